package contracts

// Candidate is one stock entering the recommendation pipeline, carrying the
// scores produced upstream (risk engine, signal aggregation, research).
type Candidate struct {
	Ticker        string  `json:"ticker"`
	Sector        string  `json:"sector"`
	RiskScore     float64 `json:"risk_score"`
	ResearchScore float64 `json:"research_score"`
	SignalScore   float64 `json:"signal_score"`
}

// UserRiskProfile is the caller-supplied user context, consumed read-only.
type UserRiskProfile struct {
	RiskLevel           RiskLevel `json:"risk_level"`
	VolatilityTolerance float64   `json:"volatility_tolerance"` // 0-100
}

// RecommendationScore holds the four weighted components and the final score.
type RecommendationScore struct {
	ResearchScore      float64 `json:"research_score"`
	SignalScore        float64 `json:"signal_score"`
	RiskAlignmentScore float64 `json:"risk_alignment_score"`
	MacroFitScore      float64 `json:"macro_fit_score"`
	FinalScore         float64 `json:"final_score"`
}

// StockRecommendation is one ranked output of the recommendation engine.
type StockRecommendation struct {
	Ticker            string                 `json:"ticker"`
	Scores            RecommendationScore    `json:"scores"`
	Explanation       string                 `json:"explanation"`
	ReasoningMetadata map[string]interface{} `json:"reasoning_metadata"`
	Rank              int                    `json:"rank"` // 1-based, assigned after sorting
}

// IsTopRanked checks if the recommendation is in the top N ranks
func (r *StockRecommendation) IsTopRanked(n int) bool {
	return r.Rank <= n && r.Rank > 0
}
