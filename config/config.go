// Package config loads and validates simulation scenario files.
//
// A scenario is the complete input of one run: the simulated span and
// starting balance, the recurring cash-flow rules, the agent wiring and
// the journal destination. Files may be YAML or JSON. Amounts cross
// the boundary as float64 and are converted to decimal when the domain
// values are built.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/budgetsim/agent"
	"github.com/rustyeddy/budgetsim/asset"
	"github.com/rustyeddy/budgetsim/budget"
)

// Scenario represents the complete simulation configuration
type Scenario struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Rules      []RuleConfig     `json:"rules" yaml:"rules"`
	Agent      AgentConfig      `json:"agent" yaml:"agent"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// SimulationConfig contains the simulated span and opening balance
type SimulationConfig struct {
	StartDate       string  `json:"start_date" yaml:"start_date"`
	EndDate         string  `json:"end_date" yaml:"end_date"`
	StartingBalance float64 `json:"starting_balance" yaml:"starting_balance"`
	Currency        string  `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// RuleConfig is one recurring cash-flow rule
type RuleConfig struct {
	Category        string  `json:"category" yaml:"category"`
	InitialDate     string  `json:"initial_date" yaml:"initial_date"`
	FinalDate       string  `json:"final_date" yaml:"final_date"`
	Type            string  `json:"type" yaml:"type"`
	Recurrence      string  `json:"recurrence" yaml:"recurrence"`
	RecurrenceValue int     `json:"recurrence_value" yaml:"recurrence_value"`
	Amount          float64 `json:"amount" yaml:"amount"`
}

// AgentConfig selects and parameterizes the decision policies
type AgentConfig struct {
	SellStrategy      string        `json:"sell_strategy" yaml:"sell_strategy"`
	BuyStrategy       string        `json:"buy_strategy" yaml:"buy_strategy"`
	MinimumBalance    float64       `json:"minimum_balance" yaml:"minimum_balance"`
	MinimumInvestment float64       `json:"minimum_investment,omitempty" yaml:"minimum_investment,omitempty"`
	MinimumChunk      float64       `json:"minimum_chunk,omitempty" yaml:"minimum_chunk,omitempty"`
	Deposit           DepositConfig `json:"deposit" yaml:"deposit"`
}

// DepositConfig describes the product a buy strategy opens
type DepositConfig struct {
	InterestRate   float64 `json:"interest_rate" yaml:"interest_rate"`
	Compounding    string  `json:"compounding" yaml:"compounding"`
	MinimumPeriods int     `json:"minimum_periods" yaml:"minimum_periods"`
	BoundaryOnly   bool    `json:"boundary_only" yaml:"boundary_only"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	Dir    string `json:"dir,omitempty" yaml:"dir,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads a scenario from a file (YAML or JSON)
func LoadFromFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	s := &Scenario{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, s)
	if err != nil {
		err = json.Unmarshal(data, s)
		if err != nil {
			return nil, fmt.Errorf("parse scenario (tried YAML and JSON): %w", err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return s, nil
}

// SaveToFile saves a scenario to a file (JSON or YAML based on extension)
func (s *Scenario) SaveToFile(path string) error {
	var data []byte
	var err error

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	default:
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scenario file: %w", err)
	}

	return nil
}

// Validate checks if the scenario is valid
func (s *Scenario) Validate() error {
	start, end, err := s.Dates()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("simulation.end_date %s is before start_date %s",
			end.Format(budget.DateLayout), start.Format(budget.DateLayout))
	}
	if s.Simulation.StartingBalance < 0 {
		return fmt.Errorf("simulation.starting_balance must not be negative")
	}

	for i, r := range s.Rules {
		if _, err := r.build(); err != nil {
			return fmt.Errorf("rules[%d]: %w", i, err)
		}
	}

	switch s.Agent.SellStrategy {
	case "", "none", "conservative":
	default:
		return fmt.Errorf("agent.sell_strategy must be 'none' or 'conservative'")
	}
	switch s.Agent.BuyStrategy {
	case "", "none":
	case "conservative":
		if s.Agent.MinimumInvestment <= 0 {
			return fmt.Errorf("agent.minimum_investment must be positive for the conservative buy strategy")
		}
	case "chunked":
		if s.Agent.MinimumChunk <= 0 {
			return fmt.Errorf("agent.minimum_chunk must be positive for the chunked buy strategy")
		}
	default:
		return fmt.Errorf("agent.buy_strategy must be 'none', 'conservative' or 'chunked'")
	}
	if s.Agent.MinimumBalance < 0 {
		return fmt.Errorf("agent.minimum_balance must not be negative")
	}
	if s.buysAssets() {
		if s.Agent.Deposit.InterestRate < 0 {
			return fmt.Errorf("agent.deposit.interest_rate must not be negative")
		}
		if _, err := budget.ParseRecurrence(s.Agent.Deposit.Compounding); err != nil {
			return fmt.Errorf("agent.deposit.compounding: %w", err)
		}
		if s.Agent.Deposit.MinimumPeriods < 0 {
			return fmt.Errorf("agent.deposit.minimum_periods must not be negative")
		}
	}

	switch s.Journal.Type {
	case "", "none":
	case "csv":
		if s.Journal.Dir == "" {
			return fmt.Errorf("journal.dir required for CSV type")
		}
	case "sqlite":
		if s.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}

	return nil
}

func (s *Scenario) buysAssets() bool {
	return s.Agent.BuyStrategy == "conservative" || s.Agent.BuyStrategy == "chunked"
}

// Dates returns the parsed simulation span.
func (s *Scenario) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(budget.DateLayout, s.Simulation.StartDate)
	if err != nil {
		err = fmt.Errorf("simulation.start_date: %w", err)
		return
	}
	end, err = time.Parse(budget.DateLayout, s.Simulation.EndDate)
	if err != nil {
		err = fmt.Errorf("simulation.end_date: %w", err)
		return
	}
	return start, end, nil
}

// StartBalance returns the opening balance as a decimal.
func (s *Scenario) StartBalance() decimal.Decimal {
	return decimal.NewFromFloat(s.Simulation.StartingBalance)
}

// Currency returns the display currency, defaulting to USD.
func (s *Scenario) Currency() string {
	if s.Simulation.Currency == "" {
		return "USD"
	}
	return s.Simulation.Currency
}

// BuildRules converts the configured rules into domain rules.
func (s *Scenario) BuildRules() ([]budget.ExpectedTransaction, error) {
	rules := make([]budget.ExpectedTransaction, 0, len(s.Rules))
	for i, r := range s.Rules {
		rule, err := r.build()
		if err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r RuleConfig) build() (budget.ExpectedTransaction, error) {
	initial, err := time.Parse(budget.DateLayout, r.InitialDate)
	if err != nil {
		return budget.ExpectedTransaction{}, fmt.Errorf("initial_date: %w", err)
	}
	final, err := time.Parse(budget.DateLayout, r.FinalDate)
	if err != nil {
		return budget.ExpectedTransaction{}, fmt.Errorf("final_date: %w", err)
	}
	txType, err := budget.ParseTransactionType(r.Type)
	if err != nil {
		return budget.ExpectedTransaction{}, err
	}
	recurrence, err := budget.ParseRecurrence(r.Recurrence)
	if err != nil {
		return budget.ExpectedTransaction{}, err
	}
	return budget.NewExpectedTransaction(r.Category, initial, final, txType,
		recurrence, r.RecurrenceValue, decimal.NewFromFloat(r.Amount))
}

// BuildAgent converts the configured strategy names into an agent.
func (s *Scenario) BuildAgent() (agent.Agent, error) {
	ag := agent.Noop()

	switch s.Agent.SellStrategy {
	case "", "none":
	case "conservative":
		ag.Sell = agent.ConservativeSell{
			MinimumBalance: decimal.NewFromFloat(s.Agent.MinimumBalance),
		}
	default:
		return agent.Agent{}, fmt.Errorf("unknown sell strategy %q", s.Agent.SellStrategy)
	}

	switch s.Agent.BuyStrategy {
	case "", "none":
	case "conservative":
		ag.Buy = agent.ConservativeBuy{
			MinimumBalance:    decimal.NewFromFloat(s.Agent.MinimumBalance),
			MinimumInvestment: decimal.NewFromFloat(s.Agent.MinimumInvestment),
			Open:              s.depositFactory(),
		}
	case "chunked":
		ag.Buy = agent.ChunkedBuy{
			MinimumBalance: decimal.NewFromFloat(s.Agent.MinimumBalance),
			MinimumChunk:   decimal.NewFromFloat(s.Agent.MinimumChunk),
			Open:           s.depositFactory(),
		}
	default:
		return agent.Agent{}, fmt.Errorf("unknown buy strategy %q", s.Agent.BuyStrategy)
	}

	return ag, nil
}

func (s *Scenario) depositFactory() agent.Factory {
	d := s.Agent.Deposit
	rate := decimal.NewFromFloat(d.InterestRate)
	compounding, err := budget.ParseRecurrence(d.Compounding)
	if err != nil {
		// Validate rejects unknown cadences before a factory is built.
		compounding = budget.Monthly
	}
	return func(amount decimal.Decimal) asset.Asset {
		return asset.NewDeposit(amount, rate, compounding, d.MinimumPeriods, d.BoundaryOnly)
	}
}

// Default returns the scenario shipped as a starting point: a year of
// rent, groceries, salary and fun money with a conservative agent.
func Default() *Scenario {
	return &Scenario{
		Simulation: SimulationConfig{
			StartDate:       "2024-10-01",
			EndDate:         "2025-10-01",
			StartingBalance: 100000,
			Currency:        "USD",
		},
		Rules: []RuleConfig{
			{
				Category:        "Rent",
				InitialDate:     "2024-10-01",
				FinalDate:       "2025-10-01",
				Type:            "EXPENSE",
				Recurrence:      "MONTHLY",
				RecurrenceValue: 1,
				Amount:          10000,
			},
			{
				Category:        "Groceries",
				InitialDate:     "2024-10-01",
				FinalDate:       "2025-10-01",
				Type:            "EXPENSE",
				Recurrence:      "WEEKLY",
				RecurrenceValue: 1,
				Amount:          650,
			},
			{
				Category:        "Salary",
				InitialDate:     "2024-10-01",
				FinalDate:       "2025-10-01",
				Type:            "INCOME",
				Recurrence:      "MONTHLY",
				RecurrenceValue: 1,
				Amount:          18000,
			},
			{
				Category:        "Fun",
				InitialDate:     "2024-10-04",
				FinalDate:       "2025-10-02",
				Type:            "EXPENSE",
				Recurrence:      "WEEKLY",
				RecurrenceValue: 1,
				Amount:          1000,
			},
		},
		Agent: AgentConfig{
			SellStrategy:      "conservative",
			BuyStrategy:       "conservative",
			MinimumBalance:    15000,
			MinimumInvestment: 25000,
			Deposit: DepositConfig{
				InterestRate:   3.5,
				Compounding:    "monthly",
				MinimumPeriods: 3,
				BoundaryOnly:   true,
			},
		},
		Journal: JournalConfig{
			Type: "none",
		},
	}
}
