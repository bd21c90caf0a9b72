package signals

import (
	"context"

	"github.com/finsight/advisor/internal/contracts"
	"github.com/finsight/advisor/pkg/logger"
)

// neutralScore is the aggregate returned when there is no evidence at all.
// "Nothing detected" is represented as maximally uncertain, not as zero
// risk or zero opportunity.
const neutralScore = 50.0

// Engine detects discrete market signals from caller-supplied observations
// and aggregates them into a single per-ticker score. Detectors returning
// nil mean "nothing interesting happened" - a legitimate outcome, not an
// error.
type Engine struct {
	logger *logger.Logger
}

// New creates a new signal engine
func New(log *logger.Logger) *Engine {
	return &Engine{logger: log}
}

// Aggregate combines multiple signals for one ticker into a 0-100 score
// using a confidence-weighted mean of strength. An empty set (or one with
// zero total confidence) aggregates to the neutral 50.0.
func (e *Engine) Aggregate(ctx context.Context, ticker string, sigs []contracts.Signal) float64 {
	if len(sigs) == 0 {
		return neutralScore
	}

	var weightedSum, weightTotal float64
	for _, s := range sigs {
		weight := s.Confidence / 100
		weightedSum += s.Strength * weight
		weightTotal += weight
	}

	if weightTotal == 0 {
		return neutralScore
	}

	aggregated := weightedSum / weightTotal

	e.logger.WithFields(map[string]interface{}{
		"ticker":       ticker,
		"signal_count": len(sigs),
		"score":        aggregated,
	}).Debug("Aggregated signals")

	return clampScore(aggregated)
}

// clampScore clamps a score to the 0-100 range
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
