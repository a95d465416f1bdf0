package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/budgetsim/budget"
)

func TestDisplayUSD(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$1,234.56", Display(dec("1234.56"), "USD"))
	assert.Equal(t, "$0.00", Display(dec("0"), "USD"))
	assert.Equal(t, "-$50.25", Display(dec("-50.25"), "USD"))
	assert.Equal(t, "$100,000.00", Display(dec("100000"), "USD"))
}

func TestDisplayRoundsToMinorUnits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$10.00", Display(dec("9.999"), "USD"))
	assert.Equal(t, "$9.99", Display(dec("9.994"), "USD"))
}

func TestDisplayUnknownCurrencyFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$12.00", Display(dec("12"), "WAT"))
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	res := zeroRateRun(t)
	s := Summarize(res)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s, "USD"))
	out := buf.String()

	assert.Contains(t, out, "Simulation 2024-10-01 to 2025-01-01 (92 days)")
	assert.Contains(t, out, "Start balance:    $3,000.00")
	assert.Contains(t, out, "Income:           $15,000.00")
	assert.Contains(t, out, "Expenses:         $6,300.00")
	assert.Contains(t, out, "Interest earned:  $0.00")
	assert.Contains(t, out, "Buys:             8 ($10,200.00 invested)")
	assert.Contains(t, out, "Lowest balance:   $1,500.00 on 2024-10-01")
}

func TestRenderMonthlyTable(t *testing.T) {
	t.Parallel()

	months := []MonthlyCashflow{
		{Month: budget.Date(2024, time.October, 1), Income: dec("5000"), Expenses: dec("2100"), Net: dec("2900")},
		{Month: budget.Date(2024, time.November, 1), Income: dec("5000"), Expenses: dec("2100"), Net: dec("2900")},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderMonthly(&buf, months, "USD"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Month")
	assert.Contains(t, lines[0], "Income")
	assert.Contains(t, lines[1], "2024-10")
	assert.Contains(t, lines[1], "$5,000.00")
	assert.Contains(t, lines[1], "$2,900.00")
	assert.Contains(t, lines[2], "2024-11")

	// Columns line up because every money cell is padded to the same
	// width.
	assert.Equal(t, strings.Index(lines[1], "$5,000.00"), strings.Index(lines[2], "$5,000.00"))
}
