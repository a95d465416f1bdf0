package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/budgetsim/budget"
	"github.com/rustyeddy/budgetsim/sim"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// sampleResult is a hand-built three day run: salary and a buy on day
// zero, lunch on day two.
func sampleResult() *sim.Result {
	start := budget.Date(2024, 10, 1)
	return &sim.Result{
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 3),
		StartBalance: dec("100"),
		Events: []budget.Transaction{
			{Category: "Salary", Date: start, Type: budget.Income, Amount: dec("700")},
			{Category: "Lunch", Date: start.AddDate(0, 0, 2), Type: budget.Expense, Amount: dec("15.25")},
		},
		Trades: []sim.TradeRecord{
			{Date: start, Asset: "deposit 5% monthly", Side: sim.Buy, Value: dec("500")},
		},
		Balances:    []decimal.Decimal{dec("300"), dec("300"), dec("284.75")},
		AssetValues: []decimal.Decimal{dec("500"), dec("500"), dec("500")},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVRecordsWholeRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	j, err := NewCSV(dir)
	require.NoError(t, err)

	created := time.Date(2024, 10, 4, 12, 0, 0, 0, time.UTC)
	require.NoError(t, Record(j, "RUN1", "demo", created, sampleResult()))
	require.NoError(t, j.Close())

	runs := readCSV(t, filepath.Join(dir, "runs.csv"))
	require.Len(t, runs, 2)
	assert.Equal(t, []string{
		"run_id", "created", "scenario", "start_date", "end_date", "days",
		"start_balance", "final_balance", "final_assets", "events", "trades",
	}, runs[0])
	assert.Equal(t, []string{
		"RUN1", "2024-10-04T12:00:00Z", "demo", "2024-10-01", "2024-10-04", "3",
		"100", "284.75", "0", "2", "1",
	}, runs[1])

	events := readCSV(t, filepath.Join(dir, "events.csv"))
	require.Len(t, events, 3)
	assert.Equal(t, []string{"RUN1", "2024-10-01", "Salary", "INCOME", "700"}, events[1])
	assert.Equal(t, []string{"RUN1", "2024-10-03", "Lunch", "EXPENSE", "15.25"}, events[2])

	trades := readCSV(t, filepath.Join(dir, "trades.csv"))
	require.Len(t, trades, 2)
	assert.Equal(t, []string{"RUN1", "2024-10-01", "deposit 5% monthly", "BUY", "500"}, trades[1])

	days := readCSV(t, filepath.Join(dir, "daily.csv"))
	require.Len(t, days, 4)
	assert.Equal(t, []string{"run_id", "day", "date", "balance", "asset_value"}, days[0])
	assert.Equal(t, []string{"RUN1", "0", "2024-10-01", "300", "500"}, days[1])
	assert.Equal(t, []string{"RUN1", "2", "2024-10-03", "284.75", "500"}, days[3])
}

func TestCSVCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out", "journal")
	j, err := NewCSV(dir)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	for _, name := range []string{"runs.csv", "events.csv", "trades.csv", "daily.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestCSVHeadersOnlyWhenEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	j, err := NewCSV(dir)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	rows := readCSV(t, filepath.Join(dir, "events.csv"))
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"run_id", "date", "category", "type", "amount"}, rows[0])
}
