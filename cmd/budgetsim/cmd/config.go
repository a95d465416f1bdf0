package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/budgetsim/config"
)

var (
	configInitOutput   string
	configValidateFile string
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage scenario files",
	Long:  `Create and validate scenario files`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default scenario file",
	Long: `Create a scenario file with the default household budget:
monthly rent and salary, weekly groceries and fun money, a conservative
agent, and a 3.5% monthly deposit. Edit it from there.`,
	RunE: runConfigInit,
}

// configValidateCmd represents the config validate command
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario file",
	Long:  `Check that a scenario file parses and passes validation`,
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "scenario.yaml", "output file path")
	configValidateCmd.Flags().StringVarP(&configValidateFile, "file", "f", "", "path to scenario file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	scenario := config.Default()
	if err := scenario.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save scenario: %w", err)
	}

	fmt.Printf("✓ Created default scenario: %s\n", configInitOutput)
	fmt.Println("\nEdit the file to adjust rules and strategies, then run:")
	fmt.Printf("  budgetsim run -f %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	scenario, err := config.LoadFromFile(configValidateFile)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Scenario valid: %s\n", configValidateFile)
	fmt.Printf("  Span:    %s to %s\n", scenario.Simulation.StartDate, scenario.Simulation.EndDate)
	fmt.Printf("  Rules:   %d\n", len(scenario.Rules))
	fmt.Printf("  Agent:   sell=%s buy=%s\n", orNone(scenario.Agent.SellStrategy), orNone(scenario.Agent.BuyStrategy))
	fmt.Printf("  Journal: %s\n", orNone(scenario.Journal.Type))
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
