package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tsmom",
	Short: "A dual-horizon time-series momentum backtester",
	Long: `TSMOM computes a dual-horizon momentum signal over a price series and
simulates single-position trade execution against it.

It provides tools for:
  - Generating momentum signals from bar CSV files
  - Backtesting the signal with a single-position state machine
  - Reconstructing mark-to-market equity curves
  - Journaling trades, equity and run summaries to SQLite or CSV`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
