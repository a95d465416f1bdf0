package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/budgetsim/internal/logging"
)

var (
	logLevel string
	logFile  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "budgetsim",
	Short: "A deterministic personal finance simulator",
	Long: `budgetsim projects personal finances one day at a time.

It expands recurring income and expense rules into dated transactions,
lets a pluggable agent park surplus cash in interest-bearing deposits
and liquidate them when the balance runs low, and reports balances,
asset values and net worth across the simulated span.

Features:
- Recurring budget rules (daily, weekly, monthly) with CSV import/export
- Interest-bearing deposits with configurable compounding
- Sell/buy agent policies with balance thresholds
- Scenario files in YAML or JSON
- Run journaling to CSV or SQLite
- Summary and monthly cashflow reports

Runs are deterministic: the same scenario always produces the same
numbers, so two scenarios can be compared line by line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := logging.Default()
		cfg.Level = logLevel
		cfg.File = logFile
		_, err := logging.Setup(cfg)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this rotated file")
}
