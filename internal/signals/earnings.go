package signals

import (
	"context"
	"math"
	"time"

	"github.com/finsight/advisor/internal/contracts"
)

// EarningsReport holds reported vs. consensus EPS for one quarter.
type EarningsReport struct {
	ActualEPS    float64 `json:"actual_eps"`
	EstimatedEPS float64 `json:"estimated_eps"`
}

// DetectEarningsSurprise emits a signal when actual EPS deviates from the
// estimate by at least 5%. A zero estimate makes the surprise undefined, so
// no signal is emitted. Earnings data is hard data, so confidence is fixed
// at 95.
func (e *Engine) DetectEarningsSurprise(ctx context.Context, ticker string, report EarningsReport, ts time.Time) *contracts.Signal {
	if report.EstimatedEPS == 0 {
		return nil
	}

	surprisePct := ((report.ActualEPS - report.EstimatedEPS) / math.Abs(report.EstimatedEPS)) * 100

	if math.Abs(surprisePct) < 5 {
		return nil
	}

	strength := min(math.Abs(surprisePct)*2, 100)

	e.logger.WithFields(map[string]interface{}{
		"ticker":       ticker,
		"actual_eps":   report.ActualEPS,
		"estimated":    report.EstimatedEPS,
		"surprise_pct": surprisePct,
	}).Info("Earnings surprise detected")

	return &contracts.Signal{
		Ticker:     ticker,
		Type:       contracts.SignalEarningsSurprise,
		Strength:   strength,
		Confidence: 95.0,
		Timestamp:  signalTime(ts),
		Metadata: map[string]interface{}{
			"actual_eps":    report.ActualEPS,
			"estimated_eps": report.EstimatedEPS,
			"surprise_pct":  surprisePct,
		},
	}
}

// signalTime defaults a zero timestamp to the current UTC time
func signalTime(ts time.Time) time.Time {
	if ts.IsZero() {
		return time.Now().UTC()
	}
	return ts
}
