package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/budgetsim/config"
	"github.com/rustyeddy/budgetsim/report"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demo scenario",
	Long: `Run the built-in demo scenario without any setup.

One simulated year of a household budget: monthly rent and salary,
weekly groceries and fun money, with a conservative agent sweeping
surplus cash into a 3.5% monthly deposit and selling it back when the
balance drops too low.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Budget Simulation Demo ===")
	fmt.Println()

	scenario := config.Default()
	fmt.Printf("Scenario: %s to %s, %d rules, starting at %s\n",
		scenario.Simulation.StartDate, scenario.Simulation.EndDate,
		len(scenario.Rules),
		report.Display(scenario.StartBalance(), scenario.Currency()))
	fmt.Printf("Agent:    sell=%s buy=%s\n", scenario.Agent.SellStrategy, scenario.Agent.BuyStrategy)
	fmt.Println()

	res, err := simulate(scenario, "")
	if err != nil {
		return err
	}

	currency := scenario.Currency()
	if err := report.Render(os.Stdout, report.Summarize(res), currency); err != nil {
		return err
	}
	fmt.Println()
	if err := report.RenderMonthly(os.Stdout, report.Monthly(res), currency); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Demo complete")
	fmt.Println("✓ Save this scenario with: budgetsim config init -o scenario.yaml")
	return nil
}
