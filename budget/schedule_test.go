package budget

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_OrderedByDateThenCategory(t *testing.T) {
	t.Parallel()

	rules := []ExpectedTransaction{
		mustRule(t, "Rent",
			Date(2024, time.October, 1), Date(2025, time.January, 1),
			Expense, Monthly, 1, "1000"),
		mustRule(t, "Groceries",
			Date(2024, time.October, 1), Date(2024, time.October, 29),
			Expense, Weekly, 1, "120"),
		mustRule(t, "Salary",
			Date(2024, time.October, 1), Date(2025, time.January, 1),
			Income, Monthly, 1, "5000"),
	}

	events := Schedule(rules)
	require.Len(t, events, 10)

	ordered := sort.SliceIsSorted(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Category < events[j].Category
	})
	assert.True(t, ordered, "schedule must be sorted by (date, category)")

	// Oct 1 carries all three categories, alphabetically.
	assert.Equal(t, "Groceries", events[0].Category)
	assert.Equal(t, "Rent", events[1].Category)
	assert.Equal(t, "Salary", events[2].Category)
}

func TestSchedule_StableForEqualKeys(t *testing.T) {
	t.Parallel()

	// Two rules share category and dates; their occurrences must keep rule
	// order so the schedule is reproducible.
	rules := []ExpectedTransaction{
		mustRule(t, "Utilities",
			Date(2024, time.October, 1), Date(2024, time.November, 1),
			Expense, Monthly, 1, "80"),
		mustRule(t, "Utilities",
			Date(2024, time.October, 1), Date(2024, time.November, 1),
			Expense, Monthly, 1, "45"),
	}

	events := Schedule(rules)
	require.Len(t, events, 2)
	assert.True(t, events[0].Amount.Equal(rules[0].Amount))
	assert.True(t, events[1].Amount.Equal(rules[1].Amount))
}

func TestSchedule_NoRules(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Schedule(nil))
}
