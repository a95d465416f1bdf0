package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/budgetsim/budget"
	"github.com/rustyeddy/budgetsim/journal"
)

var runsDBPath string

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect recorded runs",
	Long: `Inspect runs recorded to a SQLite journal.

Every journaled run keeps its full trail: the dated budget events, the
agent's trades, and the balance and asset value of every simulated day.

Examples:
  budgetsim runs list --db budgetsim.sqlite
  budgetsim runs show <run-id> --db budgetsim.sqlite`,
}

// runsListCmd represents the runs list command
var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

// runsShowCmd represents the runs show command
var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one recorded run with its trades",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)

	runsCmd.PersistentFlags().StringVarP(&runsDBPath, "db", "d", "./budgetsim.sqlite", "path to sqlite journal")
}

func runRunsList(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(runsDBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	runs, err := j.ListRuns()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-26s  %-19s  %-24s  %5s  %14s\n",
		"RUN ID", "CREATED", "SCENARIO", "DAYS", "FINAL BALANCE")
	for _, r := range runs {
		fmt.Printf("%-26s  %-19s  %-24s  %5d  %14s\n",
			r.RunID, r.Created.Format("2006-01-02 15:04:05"),
			r.Scenario, r.Days, r.FinalBalance)
	}
	fmt.Printf("\n%d runs\n", len(runs))
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(runsDBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	runID := args[0]
	r, err := j.GetRun(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n", r.RunID)
	fmt.Printf("  Created:       %s\n", r.Created.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Scenario:      %s\n", r.Scenario)
	fmt.Printf("  Span:          %s to %s (%d days)\n",
		r.StartDate.Format(budget.DateLayout), r.EndDate.Format(budget.DateLayout), r.Days)
	fmt.Printf("  Start balance: %s\n", r.StartBalance)
	fmt.Printf("  Final balance: %s\n", r.FinalBalance)
	fmt.Printf("  Final assets:  %s\n", r.FinalAssets)
	fmt.Printf("  Events:        %d\n", r.Events)
	fmt.Printf("  Trades:        %d\n", r.Trades)

	trades, err := j.ListTradesByRun(runID)
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}
	if len(trades) == 0 {
		return nil
	}

	fmt.Println("\nTrades:")
	for _, t := range trades {
		fmt.Printf("  %s  %-4s  %-24s  %14s\n",
			t.Date.Format(budget.DateLayout), t.Side, t.Asset, t.Value)
	}
	return nil
}
