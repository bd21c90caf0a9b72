package recommend

import (
	"context"
	"sort"

	"github.com/finsight/advisor/internal/contracts"
)

// Rank scores every candidate against the user profile and returns the top
// N recommendations, ranked 1..N by final score. The sort is stable with
// no secondary key: candidates with exactly equal final scores keep their
// input order. Callers filter by risk band first if they want the band
// constraint applied.
func (e *Engine) Rank(ctx context.Context, candidates []contracts.Candidate, profile contracts.UserRiskProfile, topN int) []contracts.StockRecommendation {
	e.logger.WithFields(map[string]interface{}{
		"candidates": len(candidates),
		"risk_level": string(profile.RiskLevel),
		"top_n":      topN,
	}).Info("Ranking candidates")

	recommendations := make([]contracts.StockRecommendation, 0, len(candidates))

	for _, c := range candidates {
		riskAlignment := e.RiskAlignmentScore(c.RiskScore, profile.RiskLevel, profile.VolatilityTolerance)
		macroFit := e.MacroFitScore(c.Sector)
		finalScore := e.FinalScore(c.ResearchScore, c.SignalScore, riskAlignment, macroFit)

		scores := contracts.RecommendationScore{
			ResearchScore:      c.ResearchScore,
			SignalScore:        c.SignalScore,
			RiskAlignmentScore: riskAlignment,
			MacroFitScore:      macroFit,
			FinalScore:         finalScore,
		}

		recommendations = append(recommendations, contracts.StockRecommendation{
			Ticker:      c.Ticker,
			Scores:      scores,
			Explanation: e.generateExplanation(c.Ticker, scores, c.Sector, profile.RiskLevel),
			ReasoningMetadata: map[string]interface{}{
				"research_score":       scores.ResearchScore,
				"signal_score":         scores.SignalScore,
				"risk_alignment_score": scores.RiskAlignmentScore,
				"macro_fit_score":      scores.MacroFitScore,
				"user_risk_level":      string(profile.RiskLevel),
				"stock_sector":         c.Sector,
			},
			// Rank assigned after sorting
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Scores.FinalScore > recommendations[j].Scores.FinalScore
	})

	if topN < 0 {
		topN = 0
	}
	if topN < len(recommendations) {
		recommendations = recommendations[:topN]
	}
	for i := range recommendations {
		recommendations[i].Rank = i + 1
	}

	e.logger.WithField("returned", len(recommendations)).Info("Ranking completed")

	return recommendations
}
