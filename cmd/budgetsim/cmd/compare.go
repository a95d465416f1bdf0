package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/budgetsim/agent"
	"github.com/rustyeddy/budgetsim/config"
	"github.com/rustyeddy/budgetsim/report"
	"github.com/rustyeddy/budgetsim/sim"
)

var compareScenarioPath string

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a scenario's agent against doing nothing",
	Long: `Compare a scenario's agent against doing nothing.

Runs the scenario twice over the same rules and span: once with the
configured agent and once with a no-op agent that never trades. Both
runs execute concurrently, then the summaries are printed side by side
with the net worth difference the agent made.

Example:
  budgetsim compare -f scenario.yaml`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVarP(&compareScenarioPath, "file", "f", "", "path to scenario file (required)")
	compareCmd.MarkFlagRequired("file")
}

func runCompare(cmd *cobra.Command, args []string) error {
	scenario, err := config.LoadFromFile(compareScenarioPath)
	if err != nil {
		return err
	}

	rules, err := scenario.BuildRules()
	if err != nil {
		return err
	}
	ag, err := scenario.BuildAgent()
	if err != nil {
		return err
	}
	start, end, err := scenario.Dates()
	if err != nil {
		return err
	}

	withAgent, err := sim.NewEngine(start, end, rules, ag)
	if err != nil {
		return fmt.Errorf("build agent engine: %w", err)
	}
	baseline, err := sim.NewEngine(start, end, rules, agent.Noop())
	if err != nil {
		return fmt.Errorf("build baseline engine: %w", err)
	}

	// The engines share nothing mutable, so both runs can go at once.
	var (
		wg                sync.WaitGroup
		agentRes          *sim.Result
		baseRes           *sim.Result
		agentErr, baseErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		agentRes, agentErr = withAgent.Run(scenario.StartBalance())
	}()
	go func() {
		defer wg.Done()
		baseRes, baseErr = baseline.Run(scenario.StartBalance())
	}()
	wg.Wait()

	if agentErr != nil {
		return fmt.Errorf("agent run: %w", agentErr)
	}
	if baseErr != nil {
		return fmt.Errorf("baseline run: %w", baseErr)
	}

	currency := scenario.Currency()

	fmt.Printf("--- With agent (%s / %s) ---\n", scenario.Agent.SellStrategy, scenario.Agent.BuyStrategy)
	if err := report.Render(os.Stdout, report.Summarize(agentRes), currency); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("--- Baseline (no agent) ---")
	if err := report.Render(os.Stdout, report.Summarize(baseRes), currency); err != nil {
		return err
	}

	delta := agentRes.FinalNetWorth().Sub(baseRes.FinalNetWorth())
	fmt.Println()
	fmt.Printf("Agent net worth impact: %s\n", report.Display(delta, currency))
	return nil
}
