package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/budgetsim/agent"
	"github.com/rustyeddy/budgetsim/budget"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultScenarioValidates(t *testing.T) {
	t.Parallel()

	s := Default()
	require.NoError(t, s.Validate())

	start, end, err := s.Dates()
	require.NoError(t, err)
	assert.True(t, start.Equal(budget.Date(2024, time.October, 1)))
	assert.True(t, end.Equal(budget.Date(2025, time.October, 1)))
	assert.Equal(t, "100000", s.StartBalance().String())
	assert.Equal(t, "USD", s.Currency())

	rules, err := s.BuildRules()
	require.NoError(t, err)
	require.Len(t, rules, 4)
	assert.Equal(t, "Rent", rules[0].Category)
	assert.Equal(t, budget.Expense, rules[0].Type)
	assert.Equal(t, budget.Monthly, rules[0].Recurrence)
	assert.Equal(t, "Salary", rules[2].Category)
	assert.Equal(t, budget.Income, rules[2].Type)

	ag, err := s.BuildAgent()
	require.NoError(t, err)
	require.NotNil(t, ag.Sell)
	require.NotNil(t, ag.Buy)
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, "scenario.yaml", `
simulation:
  start_date: "2024-10-01"
  end_date: "2025-04-01"
  starting_balance: 50000
  currency: EUR
rules:
  - category: Rent
    initial_date: "2024-10-01"
    final_date: "2025-04-01"
    type: expense
    recurrence: monthly
    recurrence_value: 1
    amount: 2100
agent:
  sell_strategy: conservative
  buy_strategy: chunked
  minimum_balance: 5000
  minimum_chunk: 2000
  deposit:
    interest_rate: 3.5
    compounding: monthly
    minimum_periods: 3
    boundary_only: true
journal:
  type: none
`)

	s, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "EUR", s.Currency())
	assert.Equal(t, "50000", s.StartBalance().String())

	rules, err := s.BuildRules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, budget.Expense, rules[0].Type)
	assert.True(t, rules[0].Amount.Equal(decimal.NewFromInt(2100)))
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, "scenario.json", `{
  "simulation": {
    "start_date": "2024-10-01",
    "end_date": "2024-11-01",
    "starting_balance": 1000
  },
  "agent": {"sell_strategy": "none", "buy_strategy": "none"},
  "journal": {"type": "none"}
}`)

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", s.Currency(), "currency defaults when omitted")
	assert.Empty(t, s.Rules)
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"scenario.yaml", "scenario.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Default().SaveToFile(path))

		got, err := LoadFromFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, Default(), got, name)
	}
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr string
	}{
		{
			name:    "end before start",
			mutate:  func(s *Scenario) { s.Simulation.EndDate = "2024-09-01" },
			wantErr: "before start_date",
		},
		{
			name:    "negative starting balance",
			mutate:  func(s *Scenario) { s.Simulation.StartingBalance = -1 },
			wantErr: "starting_balance",
		},
		{
			name:    "bad rule date",
			mutate:  func(s *Scenario) { s.Rules[1].InitialDate = "05/10/2024" },
			wantErr: "rules[1]",
		},
		{
			name:    "negative rule amount",
			mutate:  func(s *Scenario) { s.Rules[0].Amount = -10 },
			wantErr: "rules[0]",
		},
		{
			name:    "unknown sell strategy",
			mutate:  func(s *Scenario) { s.Agent.SellStrategy = "reckless" },
			wantErr: "sell_strategy",
		},
		{
			name:    "unknown buy strategy",
			mutate:  func(s *Scenario) { s.Agent.BuyStrategy = "yolo" },
			wantErr: "buy_strategy",
		},
		{
			name:    "conservative buy without minimum investment",
			mutate:  func(s *Scenario) { s.Agent.MinimumInvestment = 0 },
			wantErr: "minimum_investment",
		},
		{
			name: "chunked buy without minimum chunk",
			mutate: func(s *Scenario) {
				s.Agent.BuyStrategy = "chunked"
				s.Agent.MinimumChunk = 0
			},
			wantErr: "minimum_chunk",
		},
		{
			name:    "unknown compounding",
			mutate:  func(s *Scenario) { s.Agent.Deposit.Compounding = "hourly" },
			wantErr: "compounding",
		},
		{
			name:    "csv journal without dir",
			mutate:  func(s *Scenario) { s.Journal = JournalConfig{Type: "csv"} },
			wantErr: "journal.dir",
		},
		{
			name:    "sqlite journal without db path",
			mutate:  func(s *Scenario) { s.Journal = JournalConfig{Type: "sqlite"} },
			wantErr: "journal.db_path",
		},
		{
			name:    "unknown journal type",
			mutate:  func(s *Scenario) { s.Journal.Type = "parquet" },
			wantErr: "journal.type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := Default()
			tc.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNoStrategiesSkipDepositValidation(t *testing.T) {
	t.Parallel()

	s := Default()
	s.Agent = AgentConfig{SellStrategy: "none", BuyStrategy: "none"}
	assert.NoError(t, s.Validate())
}

func TestBuildAgentChunkedWiring(t *testing.T) {
	t.Parallel()

	s := Default()
	s.Agent.BuyStrategy = "chunked"
	s.Agent.MinimumBalance = 15000
	s.Agent.MinimumChunk = 2000

	ag, err := s.BuildAgent()
	require.NoError(t, err)

	// 20000 cash leaves 5000 investable: one full chunk plus the rest.
	bought := ag.Buy.DecideBuy(decimal.NewFromInt(20000), nil, 0)
	require.Len(t, bought, 2)
	assert.Equal(t, "2000", bought[0].Value().String())
	assert.Equal(t, "3000", bought[1].Value().String())
	assert.Equal(t, "deposit 3.5% monthly", bought[0].Name())
}

func TestBuildAgentNoneIsNoop(t *testing.T) {
	t.Parallel()

	s := Default()
	s.Agent = AgentConfig{SellStrategy: "none", BuyStrategy: "none"}

	ag, err := s.BuildAgent()
	require.NoError(t, err)
	assert.IsType(t, agent.NoopSell{}, ag.Sell)
	assert.IsType(t, agent.NoopBuy{}, ag.Buy)
}
