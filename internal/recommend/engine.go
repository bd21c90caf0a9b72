package recommend

import (
	"fmt"

	"github.com/finsight/advisor/internal/contracts"
	"github.com/finsight/advisor/pkg/logger"
)

// Component weights for the final recommendation score.
const (
	weightResearch      = 0.4
	weightSignal        = 0.3
	weightRiskAlignment = 0.2
	weightMacroFit      = 0.1
)

// Engine scores, filters and ranks recommendation candidates. It holds
// only the fixed weights, the macro-fit tables and the configured market
// regime, so one instance serves any number of users concurrently.
type Engine struct {
	regime string
	logger *logger.Logger
}

// New creates a new recommendation engine for the given market regime.
// An empty or unknown regime falls back to neutral.
func New(regime string, log *logger.Logger) *Engine {
	if _, ok := macroFitTables[regime]; !ok {
		regime = "neutral"
	}
	return &Engine{regime: regime, logger: log}
}

// FilterByRiskBand drops candidates whose risk score falls outside the
// user's risk band. Unknown risk levels keep the full 0-100 band, so
// nothing is filtered.
func (e *Engine) FilterByRiskBand(candidates []contracts.Candidate, userRiskLevel contracts.RiskLevel) []contracts.Candidate {
	minRisk, maxRisk := userRiskLevel.Band()

	filtered := make([]contracts.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.RiskScore >= minRisk && c.RiskScore <= maxRisk {
			filtered = append(filtered, c)
		}
	}

	e.logger.WithFields(map[string]interface{}{
		"total_input": len(candidates),
		"passed":      len(filtered),
		"risk_level":  string(userRiskLevel),
	}).Info("Risk band filter completed")

	return filtered
}

// RiskAlignmentScore measures how well a stock's risk matches the user's
// band: 100 inside the band, otherwise penalized by twice the distance to
// the nearest band edge. Volatility tolerance then scales the base between
// 70% and 100% of its value.
func (e *Engine) RiskAlignmentScore(stockRiskScore float64, userRiskLevel contracts.RiskLevel, volatilityTolerance float64) float64 {
	minRisk, maxRisk := userRiskLevel.Band()

	var baseScore float64
	if stockRiskScore >= minRisk && stockRiskScore <= maxRisk {
		baseScore = 100
	} else {
		var distance float64
		if stockRiskScore < minRisk {
			distance = minRisk - stockRiskScore
		} else {
			distance = stockRiskScore - maxRisk
		}
		baseScore = max(0, 100-(distance*2))
	}

	volatilityFactor := volatilityTolerance / 100
	adjusted := baseScore * (0.7 + (volatilityFactor * 0.3))

	return clampScore(adjusted)
}

// MacroFitScore looks up how favorable the configured market regime is
// for a sector. Unknown sectors score 50.
func (e *Engine) MacroFitScore(sector string) float64 {
	if score, ok := macroFitTables[e.regime][sector]; ok {
		return score
	}
	return 50
}

// FinalScore combines the four component scores with the fixed weights.
func (e *Engine) FinalScore(research, signal, riskAlignment, macroFit float64) float64 {
	final := weightResearch*research +
		weightSignal*signal +
		weightRiskAlignment*riskAlignment +
		weightMacroFit*macroFit

	return clampScore(final)
}

// generateExplanation renders the one-paragraph recommendation rationale
// citing the final score and all four components.
func (e *Engine) generateExplanation(ticker string, scores contracts.RecommendationScore, sector string, userRiskLevel contracts.RiskLevel) string {
	return fmt.Sprintf(
		"%s is recommended with a score of %.1f/100. "+
			"This recommendation is based on strong research quality (%.1f), "+
			"positive market signals (%.1f), "+
			"good alignment with your %s risk profile (%.1f), "+
			"and favorable macro conditions for %s (%.1f).",
		ticker, scores.FinalScore,
		scores.ResearchScore,
		scores.SignalScore,
		userRiskLevel, scores.RiskAlignmentScore,
		sector, scores.MacroFitScore,
	)
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
