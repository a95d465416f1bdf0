package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/budgetsim/budget"
	"github.com/rustyeddy/budgetsim/config"
	"github.com/rustyeddy/budgetsim/internal/id"
	"github.com/rustyeddy/budgetsim/journal"
	"github.com/rustyeddy/budgetsim/report"
	"github.com/rustyeddy/budgetsim/sim"
)

var (
	runScenarioPath string
	runRulesPath    string
	runShowMonths   bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation from a scenario file",
	Long: `Run a simulation from a scenario file.

The scenario file (YAML or JSON) defines the simulated span, the
starting balance, the recurring budget rules, the agent strategies and
the journal backend. Rules can be overridden from a CSV file without
touching the scenario.

Example:
  budgetsim run -f scenario.yaml
  budgetsim run -f scenario.yaml --rules rules.csv --months`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runScenarioPath, "file", "f", "", "path to scenario file (required)")
	runCmd.Flags().StringVar(&runRulesPath, "rules", "", "override scenario rules from a CSV file")
	runCmd.Flags().BoolVar(&runShowMonths, "months", false, "also print the monthly cashflow table")
	runCmd.MarkFlagRequired("file")
}

func runRun(cmd *cobra.Command, args []string) error {
	scenario, err := config.LoadFromFile(runScenarioPath)
	if err != nil {
		return err
	}

	res, err := simulate(scenario, runRulesPath)
	if err != nil {
		return err
	}

	if err := record(scenario, runScenarioPath, res); err != nil {
		return err
	}

	if err := report.Render(os.Stdout, report.Summarize(res), scenario.Currency()); err != nil {
		return err
	}
	if runShowMonths {
		fmt.Println()
		if err := report.RenderMonthly(os.Stdout, report.Monthly(res), scenario.Currency()); err != nil {
			return err
		}
	}
	return nil
}

// simulate builds the engine for a scenario and runs it to completion.
func simulate(scenario *config.Scenario, rulesPath string) (*sim.Result, error) {
	rules, err := loadRules(scenario, rulesPath)
	if err != nil {
		return nil, err
	}
	ag, err := scenario.BuildAgent()
	if err != nil {
		return nil, err
	}
	start, end, err := scenario.Dates()
	if err != nil {
		return nil, err
	}

	eng, err := sim.NewEngine(start, end, rules, ag)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"start": start.Format(budget.DateLayout),
		"end":   end.Format(budget.DateLayout),
		"rules": len(rules),
	}).Info("starting simulation")

	res, err := eng.Run(scenario.StartBalance())
	if err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"days":   res.Days(),
		"trades": len(res.Trades),
	}).Info("simulation finished")

	return res, nil
}

func loadRules(scenario *config.Scenario, rulesPath string) ([]budget.ExpectedTransaction, error) {
	if rulesPath == "" {
		return scenario.BuildRules()
	}

	f, err := os.Open(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close()

	rules, err := budget.ReadRules(f)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", rulesPath, err)
	}
	return rules, nil
}

// record writes the finished run to the journal backend the scenario
// asks for. A scenario without a journal section records nothing.
func record(scenario *config.Scenario, label string, res *sim.Result) error {
	j, err := openJournal(scenario)
	if err != nil {
		return err
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	runID := id.New()
	if err := journal.Record(j, runID, label, time.Now().UTC(), res); err != nil {
		return fmt.Errorf("journal run: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"run":     runID,
		"journal": scenario.Journal.Type,
	}).Info("run recorded")
	fmt.Printf("Recorded run %s\n\n", runID)
	return nil
}

func openJournal(scenario *config.Scenario) (journal.Journal, error) {
	switch scenario.Journal.Type {
	case "", "none":
		return nil, nil
	case "csv":
		j, err := journal.NewCSV(scenario.Journal.Dir)
		if err != nil {
			return nil, fmt.Errorf("create csv journal: %w", err)
		}
		return j, nil
	case "sqlite":
		j, err := journal.NewSQLite(scenario.Journal.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite journal: %w", err)
		}
		return j, nil
	default:
		return nil, fmt.Errorf("unknown journal type %q", scenario.Journal.Type)
	}
}
