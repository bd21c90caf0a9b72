package signals

import (
	"context"
	"math"
	"time"

	"github.com/finsight/advisor/internal/contracts"
)

// SentimentSnapshot holds current vs. baseline sentiment and the mention
// volume behind it. Sentiment values are on the -1 to 1 scale.
type SentimentSnapshot struct {
	Current       float64 `json:"current"`
	Baseline      float64 `json:"baseline"`
	MentionVolume int     `json:"mention_volume"`
}

// DetectSentimentSpike emits a signal when sentiment moved by at least 0.2
// from baseline on 100 or more mentions. Sentiment is the noisiest source,
// so confidence is fixed at 60.
func (e *Engine) DetectSentimentSpike(ctx context.Context, ticker string, snapshot SentimentSnapshot, ts time.Time) *contracts.Signal {
	change := snapshot.Current - snapshot.Baseline

	if math.Abs(change) < 0.2 || snapshot.MentionVolume < 100 {
		return nil
	}

	sentimentComponent := min(math.Abs(change)*100, 70)
	volumeComponent := min(float64(snapshot.MentionVolume)/100, 30)
	strength := sentimentComponent + volumeComponent

	e.logger.WithFields(map[string]interface{}{
		"ticker":   ticker,
		"change":   change,
		"mentions": snapshot.MentionVolume,
	}).Info("Sentiment spike detected")

	return &contracts.Signal{
		Ticker:     ticker,
		Type:       contracts.SignalSentimentSpike,
		Strength:   strength,
		Confidence: 60.0,
		Timestamp:  signalTime(ts),
		Metadata: map[string]interface{}{
			"current_sentiment":  snapshot.Current,
			"baseline_sentiment": snapshot.Baseline,
			"sentiment_change":   change,
			"mention_volume":     snapshot.MentionVolume,
		},
	}
}
