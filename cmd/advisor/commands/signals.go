package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finsight/advisor/internal/contracts"
	"github.com/finsight/advisor/internal/signals"
)

// signalsCmd runs the signal detectors over a JSON observations file
var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "Detect market signals from an observations file",
	Long: `Runs every signal detector whose observation is present in the
input file and prints the detected signals plus the aggregate score.

Input file format (all observation blocks optional):
  {
    "ticker": "AAPL",
    "observed_at": "2026-08-25T00:00:00Z",
    "earnings": {"actual_eps": 1.15, "estimated_eps": 1.00},
    "institutional": {"ownership_change": 3.5, "institutions_buying": 5},
    "insider": {"buy_volume": 2000000, "sell_volume": 0, "insiders_buying": 3},
    "sentiment": {"current": 0.6, "baseline": 0.2, "mention_volume": 450}
  }

Example:
  go run ./cmd/advisor signals --input observations.json`,
	RunE: runSignals,
}

var signalsInput string

// observationsFile is the on-disk shape of one ticker's raw observations
type observationsFile struct {
	Ticker        string                         `json:"ticker"`
	ObservedAt    time.Time                      `json:"observed_at,omitempty"`
	Earnings      *signals.EarningsReport        `json:"earnings,omitempty"`
	Institutional *signals.InstitutionalActivity `json:"institutional,omitempty"`
	Insider       *signals.InsiderActivity       `json:"insider,omitempty"`
	Sentiment     *signals.SentimentSnapshot     `json:"sentiment,omitempty"`
}

func init() {
	rootCmd.AddCommand(signalsCmd)

	signalsCmd.Flags().StringVar(&signalsInput, "input", "", "path to JSON observations file (required)")
	_ = signalsCmd.MarkFlagRequired("input")
}

func runSignals(cmd *cobra.Command, args []string) error {
	_, log, err := setup()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(signalsInput)
	if err != nil {
		return fmt.Errorf("failed to read observations file: %w", err)
	}

	var obs observationsFile
	if err := json.Unmarshal(data, &obs); err != nil {
		return fmt.Errorf("failed to parse observations file: %w", err)
	}
	if obs.Ticker == "" {
		return fmt.Errorf("observations file is missing a ticker")
	}

	engine := signals.New(log)
	ctx := cmd.Context()

	detected := make([]contracts.Signal, 0, 4)
	if obs.Earnings != nil {
		if s := engine.DetectEarningsSurprise(ctx, obs.Ticker, *obs.Earnings, obs.ObservedAt); s != nil {
			detected = append(detected, *s)
		}
	}
	if obs.Institutional != nil {
		if s := engine.DetectInstitutionalBuying(ctx, obs.Ticker, *obs.Institutional, obs.ObservedAt); s != nil {
			detected = append(detected, *s)
		}
	}
	if obs.Insider != nil {
		if s := engine.DetectInsiderBuying(ctx, obs.Ticker, *obs.Insider, obs.ObservedAt); s != nil {
			detected = append(detected, *s)
		}
	}
	if obs.Sentiment != nil {
		if s := engine.DetectSentimentSpike(ctx, obs.Ticker, *obs.Sentiment, obs.ObservedAt); s != nil {
			detected = append(detected, *s)
		}
	}

	fmt.Printf("=== Signals for %s ===\n", obs.Ticker)
	fmt.Println()
	if len(detected) == 0 {
		fmt.Println("No signals detected.")
	}
	for _, s := range detected {
		fmt.Printf("  %-22s strength %5.1f  confidence %5.1f\n", s.Type, s.Strength, s.Confidence)
	}
	fmt.Println()
	fmt.Printf("Aggregate signal score: %.1f / 100\n", engine.Aggregate(ctx, obs.Ticker, detected))

	return nil
}
