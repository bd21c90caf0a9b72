package signals

import (
	"context"
	"time"

	"github.com/finsight/advisor/internal/contracts"
)

// InsiderActivity holds recent insider trade volumes for a ticker.
type InsiderActivity struct {
	BuyVolume      float64 `json:"buy_volume"`  // dollar volume of insider buys
	SellVolume     float64 `json:"sell_volume"` // dollar volume of insider sells
	InsidersBuying int     `json:"insiders_buying"`
}

// DetectInsiderBuying emits a signal when net insider buying is positive
// and at least 2 insiders bought. With zero sell volume the buy/sell ratio
// is undefined; the sentinel 10.0 stands in for "all buying, no selling".
func (e *Engine) DetectInsiderBuying(ctx context.Context, ticker string, activity InsiderActivity, ts time.Time) *contracts.Signal {
	netBuying := activity.BuyVolume - activity.SellVolume

	if netBuying <= 0 || activity.InsidersBuying < 2 {
		return nil
	}

	buySellRatio := 10.0
	if activity.SellVolume > 0 {
		buySellRatio = activity.BuyVolume / activity.SellVolume
	}

	ratioComponent := min(buySellRatio*20, 60)
	insiderComponent := min(float64(activity.InsidersBuying)*10, 40)
	strength := ratioComponent + insiderComponent

	e.logger.WithFields(map[string]interface{}{
		"ticker":     ticker,
		"net_buying": netBuying,
		"insiders":   activity.InsidersBuying,
	}).Info("Insider buying detected")

	return &contracts.Signal{
		Ticker:     ticker,
		Type:       contracts.SignalInsiderBuying,
		Strength:   strength,
		Confidence: 75.0,
		Timestamp:  signalTime(ts),
		Metadata: map[string]interface{}{
			"buy_volume":     activity.BuyVolume,
			"sell_volume":    activity.SellVolume,
			"net_buying":     netBuying,
			"num_insiders":   activity.InsidersBuying,
			"buy_sell_ratio": buySellRatio,
		},
	}
}
