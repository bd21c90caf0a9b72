package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finsight/advisor/internal/pipeline"
	"github.com/finsight/advisor/internal/recommend"
	"github.com/finsight/advisor/internal/risk"
	"github.com/finsight/advisor/internal/signals"
)

// recommendCmd runs the full pipeline over a JSON snapshot file
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank personalized recommendations from a snapshot file",
	Long: `Runs the full pipeline (risk analysis, signal detection, band
filter, ranking) over a point-in-time snapshot and prints the ranked
recommendations.

The snapshot file carries the user profile and one entry per candidate
stock; see internal/pipeline RunConfig for the exact shape.

Example:
  go run ./cmd/advisor recommend --input snapshot.json --top-n 5`,
	RunE: runRecommend,
}

var (
	recommendInput  string
	recommendTopN   int
	recommendRegime string
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVar(&recommendInput, "input", "", "path to JSON snapshot file (required)")
	recommendCmd.Flags().IntVar(&recommendTopN, "top-n", 0, "number of recommendations (default from config)")
	recommendCmd.Flags().StringVar(&recommendRegime, "regime", "", "market regime: bull, bear, neutral (default from config)")
	_ = recommendCmd.MarkFlagRequired("input")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(recommendInput)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var runCfg pipeline.RunConfig
	if err := json.Unmarshal(data, &runCfg); err != nil {
		return fmt.Errorf("failed to parse snapshot file: %w", err)
	}

	if recommendTopN > 0 {
		runCfg.TopN = recommendTopN
	}
	if runCfg.TopN <= 0 {
		runCfg.TopN = cfg.Recommend.TopN
	}

	regime := cfg.Recommend.MarketRegime
	if recommendRegime != "" {
		regime = recommendRegime
	}

	orchestrator := pipeline.NewOrchestrator(
		risk.New(log),
		signals.New(log),
		recommend.New(regime, log),
		log,
	)

	result := orchestrator.Run(cmd.Context(), runCfg)

	fmt.Println("=== Recommendations ===")
	fmt.Println()
	fmt.Printf("User: %s risk, volatility tolerance %.0f; regime %s\n",
		runCfg.Profile.RiskLevel, runCfg.Profile.VolatilityTolerance, regime)
	fmt.Printf("Scored %d stocks in %s\n", len(runCfg.Stocks), result.Duration)
	fmt.Println()

	if len(result.Recommendations) == 0 {
		fmt.Println("No candidates passed the risk band filter.")
		return nil
	}

	fmt.Printf("%-4s %-8s %-7s %-9s %-7s %-7s %-6s\n",
		"Rank", "Ticker", "Final", "Research", "Signal", "Align", "Macro")
	for _, rec := range result.Recommendations {
		fmt.Printf("%-4d %-8s %-7.1f %-9.1f %-7.1f %-7.1f %-6.1f\n",
			rec.Rank, rec.Ticker,
			rec.Scores.FinalScore,
			rec.Scores.ResearchScore,
			rec.Scores.SignalScore,
			rec.Scores.RiskAlignmentScore,
			rec.Scores.MacroFitScore)
	}

	fmt.Println()
	for _, rec := range result.Recommendations {
		fmt.Printf("%d. %s\n", rec.Rank, rec.Explanation)
	}

	return nil
}
