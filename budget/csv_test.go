package budget

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	rules := []ExpectedTransaction{
		mustRule(t, "Rent",
			Date(2024, time.October, 1), Date(2025, time.October, 1),
			Expense, Monthly, 1, "1000"),
		mustRule(t, "Groceries",
			Date(2024, time.October, 5), Date(2025, time.October, 5),
			Expense, Weekly, 2, "120.50"),
		mustRule(t, "Salary",
			Date(2024, time.October, 25), Date(2025, time.October, 25),
			Income, Monthly, 1, "5000"),
		mustRule(t, "",
			Date(2024, time.October, 1), Date(2024, time.October, 1),
			Income, Weekly, 1, "0"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRules(&buf, rules))

	got, err := ReadRules(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(rules))
	for i := range rules {
		assert.True(t, rules[i].Equal(got[i]), "rule %d changed across the round trip", i)
	}
}

func TestWriteRules_HeaderAndLayout(t *testing.T) {
	t.Parallel()

	rules := []ExpectedTransaction{
		mustRule(t, "Rent",
			Date(2024, time.October, 1), Date(2025, time.October, 1),
			Expense, Monthly, 1, "1000"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRules(&buf, rules))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Category,Initial Date,Final Date,Transaction Type,Recurrence,Recurrence Value,Value", lines[0])
	assert.Equal(t, "Rent,2024-10-01,2025-10-01,EXPENSE,MONTHLY,1,1000", lines[1])
}

func TestReadRules_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := ReadRules(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadRules_HeaderOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteRules(&buf, nil))

	rules, err := ReadRules(&buf)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestReadRules_RejectsForeignHeader(t *testing.T) {
	t.Parallel()

	in := "Name,Start,End\nRent,2024-10-01,2025-10-01\n"
	_, err := ReadRules(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected header")
}

func TestReadRules_BadDate(t *testing.T) {
	t.Parallel()

	in := "Category,Initial Date,Final Date,Transaction Type,Recurrence,Recurrence Value,Value\n" +
		"Rent,01/10/2024,2025-10-01,EXPENSE,MONTHLY,1,1000\n"
	_, err := ReadRules(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadRules_UnknownRecurrence(t *testing.T) {
	t.Parallel()

	in := "Category,Initial Date,Final Date,Transaction Type,Recurrence,Recurrence Value,Value\n" +
		"Rent,2024-10-01,2025-10-01,EXPENSE,QUARTERLY,1,1000\n"
	_, err := ReadRules(strings.NewReader(in))
	assert.Error(t, err)
}

func TestReadRules_InvalidRuleRejected(t *testing.T) {
	t.Parallel()

	in := "Category,Initial Date,Final Date,Transaction Type,Recurrence,Recurrence Value,Value\n" +
		"Rent,2024-10-01,2025-10-01,EXPENSE,MONTHLY,1,-1000\n"
	_, err := ReadRules(strings.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeAmount))
}

func TestReadRules_ShortRow(t *testing.T) {
	t.Parallel()

	in := "Category,Initial Date,Final Date,Transaction Type,Recurrence,Recurrence Value,Value\n" +
		"Rent,2024-10-01,2025-10-01,EXPENSE,MONTHLY\n"
	_, err := ReadRules(strings.NewReader(in))
	assert.Error(t, err)
}
