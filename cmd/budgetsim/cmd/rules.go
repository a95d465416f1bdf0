package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/budgetsim/budget"
	"github.com/rustyeddy/budgetsim/config"
	"github.com/rustyeddy/budgetsim/report"
)

var (
	rulesExpandFile   string
	rulesExpandOutput string
	rulesExportFile   string
	rulesExportOutput string
	rulesValidateFile string
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and convert budget rules",
	Long: `Inspect and convert budget rules.

Rules live inside scenario files but can also be exchanged as CSV, so
they can be edited in a spreadsheet and fed back with 'run --rules'.`,
}

// rulesExpandCmd represents the rules expand command
var rulesExpandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand a scenario's rules into dated transactions",
	Long: `Expand a scenario's rules into the full dated transaction schedule,
merged and ordered the way the simulation will consume it.

Example:
  budgetsim rules expand -f scenario.yaml
  budgetsim rules expand -f scenario.yaml -o events.csv`,
	RunE: runRulesExpand,
}

// rulesExportCmd represents the rules export command
var rulesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a scenario's rules to a CSV file",
	Long: `Export a scenario's rules to a CSV file.

Example:
  budgetsim rules export -f scenario.yaml -o rules.csv`,
	RunE: runRulesExport,
}

// rulesValidateCmd represents the rules validate command
var rulesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a rules CSV file",
	Long: `Validate a rules CSV file.

Example:
  budgetsim rules validate --rules rules.csv`,
	RunE: runRulesValidate,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesExpandCmd)
	rulesCmd.AddCommand(rulesExportCmd)
	rulesCmd.AddCommand(rulesValidateCmd)

	rulesExpandCmd.Flags().StringVarP(&rulesExpandFile, "file", "f", "", "path to scenario file (required)")
	rulesExpandCmd.Flags().StringVarP(&rulesExpandOutput, "output", "o", "", "write the schedule to a CSV file instead of stdout")
	rulesExpandCmd.MarkFlagRequired("file")

	rulesExportCmd.Flags().StringVarP(&rulesExportFile, "file", "f", "", "path to scenario file (required)")
	rulesExportCmd.Flags().StringVarP(&rulesExportOutput, "output", "o", "", "path to the CSV file to write (required)")
	rulesExportCmd.MarkFlagRequired("file")
	rulesExportCmd.MarkFlagRequired("output")

	rulesValidateCmd.Flags().StringVar(&rulesValidateFile, "rules", "", "path to the rules CSV file (required)")
	rulesValidateCmd.MarkFlagRequired("rules")
}

func runRulesExpand(cmd *cobra.Command, args []string) error {
	scenario, err := config.LoadFromFile(rulesExpandFile)
	if err != nil {
		return err
	}
	rules, err := scenario.BuildRules()
	if err != nil {
		return err
	}
	events := budget.Schedule(rules)

	if rulesExpandOutput != "" {
		if err := writeSchedule(rulesExpandOutput, events); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %d transactions to %s\n", len(events), rulesExpandOutput)
		return nil
	}

	currency := scenario.Currency()
	for _, tx := range events {
		fmt.Printf("%s  %-8s %-20s %14s\n",
			tx.Date.Format(budget.DateLayout), tx.Type, tx.Category,
			report.Display(tx.Amount, currency))
	}
	fmt.Printf("\n%d transactions from %d rules\n", len(events), len(rules))
	return nil
}

func runRulesExport(cmd *cobra.Command, args []string) error {
	scenario, err := config.LoadFromFile(rulesExportFile)
	if err != nil {
		return err
	}
	rules, err := scenario.BuildRules()
	if err != nil {
		return err
	}

	f, err := os.Create(rulesExportOutput)
	if err != nil {
		return fmt.Errorf("create rules file: %w", err)
	}
	defer f.Close()

	if err := budget.WriteRules(f, rules); err != nil {
		return fmt.Errorf("write rules: %w", err)
	}
	fmt.Printf("✓ Exported %d rules to %s\n", len(rules), rulesExportOutput)
	return nil
}

func runRulesValidate(cmd *cobra.Command, args []string) error {
	f, err := os.Open(rulesValidateFile)
	if err != nil {
		return fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close()

	rules, err := budget.ReadRules(f)
	if err != nil {
		return fmt.Errorf("invalid rules file %s: %w", rulesValidateFile, err)
	}
	fmt.Printf("✓ Rules valid: %s (%d rules)\n", rulesValidateFile, len(rules))
	return nil
}

// writeSchedule dumps dated transactions as CSV, one row per event.
func writeSchedule(path string, events []budget.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create schedule file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Date", "Category", "Transaction Type", "Value"}); err != nil {
		return err
	}
	for _, tx := range events {
		row := []string{
			tx.Date.Format(budget.DateLayout),
			tx.Category,
			string(tx.Type),
			tx.Amount.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
