package contracts

// RiskLevel classifies an overall risk score into one of three fixed bands.
type RiskLevel string

const (
	RiskConservative RiskLevel = "Conservative"
	RiskModerate     RiskLevel = "Moderate"
	RiskAggressive   RiskLevel = "Aggressive"
)

// Valid reports whether the level is one of the three known classifications.
// Unknown levels are not an error downstream: the recommendation engine
// falls back to the full 0-100 band for them.
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// Band returns the inclusive score bounds for the level.
// Unknown levels map to the full range.
func (l RiskLevel) Band() (min, max float64) {
	switch l {
	case RiskConservative:
		return 0, 33
	case RiskModerate:
		return 34, 66
	case RiskAggressive:
		return 67, 100
	default:
		return 0, 100
	}
}

// RiskComponents holds the six independent risk sub-scores for one stock.
// Each score is in the 0-100 range, higher = riskier.
type RiskComponents struct {
	VolatilityScore        float64 `json:"volatility_score"`
	BetaScore              float64 `json:"beta_score"`
	LeverageScore          float64 `json:"leverage_score"`
	EarningsStabilityScore float64 `json:"earnings_stability_score"`
	SectorRiskScore        float64 `json:"sector_risk_score"`
	ValuationRiskScore     float64 `json:"valuation_risk_score"`
}

// RiskAnalysis is the complete risk verdict for a stock.
type RiskAnalysis struct {
	Ticker           string         `json:"ticker"`
	OverallRiskScore float64        `json:"overall_risk_score"`
	RiskLevel        RiskLevel      `json:"risk_level"`
	Components       RiskComponents `json:"components"`
	RiskBand         string         `json:"risk_band"` // "0-33", "34-66", "67-100"
	Explanation      string         `json:"explanation"`
}
