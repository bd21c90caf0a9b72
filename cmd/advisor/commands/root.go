package commands

import (
	"github.com/spf13/cobra"

	"github.com/finsight/advisor/pkg/config"
	"github.com/finsight/advisor/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Deterministic stock scoring and recommendation pipeline",
	Long: `Advisor CLI

Runs the deterministic scoring core: per-stock risk analysis, market
signal detection, and personalized recommendation ranking. All inputs
are supplied by the caller; nothing is fetched.

Examples:
  go run ./cmd/advisor risk --ticker AAPL --volatility 0.25 --beta 1.2
  go run ./cmd/advisor signals --input observations.json
  go run ./cmd/advisor recommend --input snapshot.json --top-n 5`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads configuration and builds the logger shared by all commands
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if verbose {
		cfg.LogLevel = "debug"
		cfg.LogFormat = "console"
	}

	return cfg, logger.New(cfg), nil
}
