package risk

import (
	"context"
	"fmt"
	"sort"

	"github.com/finsight/advisor/internal/contracts"
	"github.com/finsight/advisor/pkg/logger"
)

// Component weights for the overall risk score.
const (
	weightVolatility        = 0.20
	weightBeta              = 0.15
	weightLeverage          = 0.20
	weightEarningsStability = 0.15
	weightSector            = 0.10
	weightValuation         = 0.20
)

// Risk level thresholds. Classification and band strings share these, so
// the two can never disagree.
const (
	conservativeThreshold = 33.33
	moderateThreshold     = 66.67
)

// sectorRiskScores maps sector names to baseline risk scores.
// Unknown sectors fall back to 50 (moderate).
var sectorRiskScores = map[string]float64{
	"Technology":             65,
	"Healthcare":             55,
	"Financials":             60,
	"Energy":                 70,
	"Utilities":              30,
	"Consumer Staples":       35,
	"Consumer Discretionary": 55,
	"Industrials":            50,
	"Materials":              60,
	"Real Estate":            50,
	"Communication Services": 55,
}

// StockMetrics carries the per-stock inputs for a risk analysis.
// All numeric inputs are assumed already computed by an external data
// provider; the engine does no fetching or estimation.
type StockMetrics struct {
	Ticker                        string  `json:"ticker"`
	HistoricalVolatility          float64 `json:"historical_volatility"` // annualized, e.g. 0.25 for 25%
	Beta                          float64 `json:"beta"`
	DebtToEquity                  float64 `json:"debt_to_equity"`
	EarningsVolatility            float64 `json:"earnings_volatility"`
	ConsecutiveProfitableQuarters int     `json:"consecutive_profitable_quarters"`
	Sector                        string  `json:"sector"`

	// Optional inputs. Nil means not supplied; zero is a meaningful value
	// for both of these, so absence cannot be encoded as zero.
	VolatilityPercentile *float64 `json:"volatility_percentile,omitempty"`
	InterestCoverage     *float64 `json:"interest_coverage,omitempty"`

	// Valuation multiples. Values <= 0 are treated as not supplied.
	PERatio      float64 `json:"pe_ratio,omitempty"`
	PriceToBook  float64 `json:"price_to_book,omitempty"`
	PriceToSales float64 `json:"price_to_sales,omitempty"`
}

// Engine is the deterministic risk scoring engine. It holds only immutable
// configuration and a logger, so one instance can score any number of
// stocks concurrently.
type Engine struct {
	logger *logger.Logger
}

// New creates a new risk engine
func New(log *logger.Logger) *Engine {
	return &Engine{logger: log}
}

// VolatilityScore converts annualized volatility into a 0-100 risk score.
// If a market percentile is supplied, the raw score is blended 60/40 with it.
func (e *Engine) VolatilityScore(historicalVolatility float64, volatilityPercentile *float64) float64 {
	volPct := historicalVolatility * 100

	// Most stocks fall in the 10-50% range, so double the percentage
	// to spread them across the scale.
	baseScore := min(volPct*2, 100)

	if volatilityPercentile != nil {
		baseScore = (baseScore * 0.6) + (*volatilityPercentile * 0.4)
	}

	return clampScore(baseScore)
}

// BetaScore maps beta linearly onto 0-100: beta 1.0 is market risk (50),
// beta 2.0+ saturates at 100. Negative beta means inverse correlation and
// scores below 50, floored at 0.
func (e *Engine) BetaScore(beta float64) float64 {
	if beta < 0 {
		return max(0, 50+(beta*25))
	}

	return clampScore(beta * 50)
}

// LeverageScore scores debt-to-equity on 0-100 (D/E of 3.0+ saturates),
// plus a step penalty when interest coverage is supplied and thin.
func (e *Engine) LeverageScore(debtToEquity float64, interestCoverage *float64) float64 {
	deScore := min((debtToEquity/3.0)*100, 100)

	if interestCoverage != nil {
		var coveragePenalty float64
		switch {
		case *interestCoverage < 1.5:
			// Cannot cover interest payments
			coveragePenalty = 30
		case *interestCoverage < 3.0:
			coveragePenalty = 15
		case *interestCoverage < 5.0:
			coveragePenalty = 5
		}

		deScore = min(deScore+coveragePenalty, 100)
	}

	return clampScore(deScore)
}

// EarningsStabilityScore scores earnings volatility on 0-100, with a step
// bonus for long profitable streaks and a penalty for inconsistency.
func (e *Engine) EarningsStabilityScore(earningsVolatility float64, consecutiveProfitableQuarters int) float64 {
	volatilityScore := min(earningsVolatility*100, 100)

	var stabilityBonus float64
	switch {
	case consecutiveProfitableQuarters >= 12:
		stabilityBonus = -30
	case consecutiveProfitableQuarters >= 8:
		stabilityBonus = -20
	case consecutiveProfitableQuarters >= 4:
		stabilityBonus = -10
	default:
		stabilityBonus = 20 // inconsistent profitability
	}

	return clampScore(volatilityScore + stabilityBonus)
}

// SectorRiskScore looks up the baseline risk for a sector.
func (e *Engine) SectorRiskScore(sector string) float64 {
	if score, ok := sectorRiskScores[sector]; ok {
		return score
	}
	return 50
}

// ValuationRiskScore averages whichever valuation multiples are supplied
// (values <= 0 are skipped). With no usable multiple it returns 50.
func (e *Engine) ValuationRiskScore(peRatio, priceToBook, priceToSales float64) float64 {
	scores := make([]float64, 0, 3)

	if peRatio > 0 {
		// P/E: 0-15 low risk, 15-30 moderate, 30+ high
		scores = append(scores, min((peRatio/50)*100, 100))
	}

	if priceToBook > 0 {
		// P/B: 0-2 low risk, 2-5 moderate, 5+ high
		scores = append(scores, min((priceToBook/8)*100, 100))
	}

	if priceToSales > 0 {
		// P/S: 0-2 low risk, 2-5 moderate, 5+ high
		scores = append(scores, min((priceToSales/8)*100, 100))
	}

	if len(scores) == 0 {
		return 50
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// OverallRisk combines component scores with the fixed weights.
func (e *Engine) OverallRisk(c contracts.RiskComponents) float64 {
	overall := weightVolatility*c.VolatilityScore +
		weightBeta*c.BetaScore +
		weightLeverage*c.LeverageScore +
		weightEarningsStability*c.EarningsStabilityScore +
		weightSector*c.SectorRiskScore +
		weightValuation*c.ValuationRiskScore

	return clampScore(overall)
}

// ClassifyRiskLevel maps an overall risk score to its level.
func (e *Engine) ClassifyRiskLevel(riskScore float64) contracts.RiskLevel {
	switch {
	case riskScore <= conservativeThreshold:
		return contracts.RiskConservative
	case riskScore <= moderateThreshold:
		return contracts.RiskModerate
	default:
		return contracts.RiskAggressive
	}
}

// RiskBand returns the band string for an overall risk score.
func (e *Engine) RiskBand(riskScore float64) string {
	switch {
	case riskScore <= conservativeThreshold:
		return "0-33"
	case riskScore <= moderateThreshold:
		return "34-66"
	default:
		return "67-100"
	}
}

// AnalyzeStockRisk performs a complete risk analysis on a stock.
// It never fails: every sub-score is clamped to 0-100, and unknown sectors
// fall back to a moderate baseline.
func (e *Engine) AnalyzeStockRisk(ctx context.Context, metrics StockMetrics) contracts.RiskAnalysis {
	e.logger.WithField("ticker", metrics.Ticker).Debug("Analyzing stock risk")

	components := contracts.RiskComponents{
		VolatilityScore:        e.VolatilityScore(metrics.HistoricalVolatility, metrics.VolatilityPercentile),
		BetaScore:              e.BetaScore(metrics.Beta),
		LeverageScore:          e.LeverageScore(metrics.DebtToEquity, metrics.InterestCoverage),
		EarningsStabilityScore: e.EarningsStabilityScore(metrics.EarningsVolatility, metrics.ConsecutiveProfitableQuarters),
		SectorRiskScore:        e.SectorRiskScore(metrics.Sector),
		ValuationRiskScore:     e.ValuationRiskScore(metrics.PERatio, metrics.PriceToBook, metrics.PriceToSales),
	}

	overall := e.OverallRisk(components)
	level := e.ClassifyRiskLevel(overall)

	e.logger.WithFields(map[string]interface{}{
		"ticker": metrics.Ticker,
		"score":  overall,
		"level":  string(level),
	}).Info("Risk analysis completed")

	return contracts.RiskAnalysis{
		Ticker:           metrics.Ticker,
		OverallRiskScore: overall,
		RiskLevel:        level,
		Components:       components,
		RiskBand:         e.RiskBand(overall),
		Explanation:      e.generateExplanation(metrics.Ticker, overall, level, components),
	}
}

// generateExplanation renders a one-paragraph explanation naming the two
// highest-scoring components. Ties keep the fixed component order, so the
// output is deterministic for equal scores.
func (e *Engine) generateExplanation(ticker string, riskScore float64, level contracts.RiskLevel, c contracts.RiskComponents) string {
	type namedScore struct {
		name  string
		score float64
	}

	ranked := []namedScore{
		{"Volatility", c.VolatilityScore},
		{"Beta", c.BetaScore},
		{"Leverage", c.LeverageScore},
		{"Earnings Stability", c.EarningsStabilityScore},
		{"Sector", c.SectorRiskScore},
		{"Valuation", c.ValuationRiskScore},
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	return fmt.Sprintf(
		"%s has an overall risk score of %.1f, classified as %s. "+
			"Primary risk factors are %s (%.1f) and %s (%.1f).",
		ticker, riskScore, level,
		ranked[0].name, ranked[0].score,
		ranked[1].name, ranked[1].score,
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
