package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsight/advisor/internal/risk"
)

// riskCmd analyzes a single stock from flag-supplied metrics
var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Analyze risk for a single stock",
	Long: `Runs the risk engine over flag-supplied metrics and prints the
component breakdown.

Example:
  go run ./cmd/advisor risk --ticker AAPL --volatility 0.25 --beta 1.2 \
    --debt-to-equity 0.5 --earnings-volatility 0.15 --profitable-quarters 8 \
    --sector Technology --pe 25.0 --pb 3.5`,
	RunE: runRisk,
}

var (
	riskTicker             string
	riskVolatility         float64
	riskBeta               float64
	riskDebtToEquity       float64
	riskEarningsVolatility float64
	riskQuarters           int
	riskSector             string
	riskVolPercentile      float64
	riskInterestCoverage   float64
	riskPE                 float64
	riskPB                 float64
	riskPS                 float64
)

func init() {
	rootCmd.AddCommand(riskCmd)

	riskCmd.Flags().StringVar(&riskTicker, "ticker", "", "stock ticker symbol (required)")
	riskCmd.Flags().Float64Var(&riskVolatility, "volatility", 0, "annualized historical volatility, e.g. 0.25")
	riskCmd.Flags().Float64Var(&riskBeta, "beta", 1.0, "stock beta vs market")
	riskCmd.Flags().Float64Var(&riskDebtToEquity, "debt-to-equity", 0, "debt-to-equity ratio")
	riskCmd.Flags().Float64Var(&riskEarningsVolatility, "earnings-volatility", 0, "quarterly earnings volatility")
	riskCmd.Flags().IntVar(&riskQuarters, "profitable-quarters", 0, "consecutive profitable quarters")
	riskCmd.Flags().StringVar(&riskSector, "sector", "", "stock sector")
	riskCmd.Flags().Float64Var(&riskVolPercentile, "volatility-percentile", 0, "volatility percentile vs market (0-100)")
	riskCmd.Flags().Float64Var(&riskInterestCoverage, "interest-coverage", 0, "interest coverage ratio (EBIT/interest)")
	riskCmd.Flags().Float64Var(&riskPE, "pe", 0, "price-to-earnings ratio")
	riskCmd.Flags().Float64Var(&riskPB, "pb", 0, "price-to-book ratio")
	riskCmd.Flags().Float64Var(&riskPS, "ps", 0, "price-to-sales ratio")

	_ = riskCmd.MarkFlagRequired("ticker")
}

func runRisk(cmd *cobra.Command, args []string) error {
	_, log, err := setup()
	if err != nil {
		return err
	}

	metrics := risk.StockMetrics{
		Ticker:                        riskTicker,
		HistoricalVolatility:          riskVolatility,
		Beta:                          riskBeta,
		DebtToEquity:                  riskDebtToEquity,
		EarningsVolatility:            riskEarningsVolatility,
		ConsecutiveProfitableQuarters: riskQuarters,
		Sector:                        riskSector,
		PERatio:                       riskPE,
		PriceToBook:                   riskPB,
		PriceToSales:                  riskPS,
	}

	// Zero is meaningful for these two, so only pass them when the flag
	// was actually set.
	if cmd.Flags().Changed("volatility-percentile") {
		metrics.VolatilityPercentile = &riskVolPercentile
	}
	if cmd.Flags().Changed("interest-coverage") {
		metrics.InterestCoverage = &riskInterestCoverage
	}

	engine := risk.New(log)
	analysis := engine.AnalyzeStockRisk(cmd.Context(), metrics)

	fmt.Println("=== Risk Analysis ===")
	fmt.Println()
	fmt.Printf("Ticker:      %s\n", analysis.Ticker)
	fmt.Printf("Risk Score:  %.1f / 100\n", analysis.OverallRiskScore)
	fmt.Printf("Risk Level:  %s (band %s)\n", analysis.RiskLevel, analysis.RiskBand)
	fmt.Println()
	fmt.Println("Components")
	fmt.Printf("  Volatility:         %.1f\n", analysis.Components.VolatilityScore)
	fmt.Printf("  Beta:               %.1f\n", analysis.Components.BetaScore)
	fmt.Printf("  Leverage:           %.1f\n", analysis.Components.LeverageScore)
	fmt.Printf("  Earnings Stability: %.1f\n", analysis.Components.EarningsStabilityScore)
	fmt.Printf("  Sector:             %.1f\n", analysis.Components.SectorRiskScore)
	fmt.Printf("  Valuation:          %.1f\n", analysis.Components.ValuationRiskScore)
	fmt.Println()
	fmt.Println(analysis.Explanation)

	return nil
}
