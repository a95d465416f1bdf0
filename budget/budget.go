// Package budget models expected cash flows: recurring income and expense
// rules and the dated transactions they expand into. Amounts are exact
// decimals and dates are normalized to UTC midnight so that simulation runs
// are reproducible byte for byte.
package budget

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType says which way money moves.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// ParseTransactionType parses a transaction type name, case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Income):
		return Income, nil
	case string(Expense):
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q (supported: INCOME, EXPENSE)", s)
	}
}

// Recurrence is a simulation cadence. Periods are fixed-length: a week is
// always 7 days and a month always 30, so weekly and monthly boundaries drift
// from the calendar on purpose. Rule expansion is the exception and steps by
// true calendar months (see ExpectedTransaction).
type Recurrence string

const (
	Daily   Recurrence = "DAILY"
	Weekly  Recurrence = "WEEKLY"
	Monthly Recurrence = "MONTHLY"
)

// ParseRecurrence parses a recurrence name, case-insensitively.
func ParseRecurrence(s string) (Recurrence, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Daily):
		return Daily, nil
	case string(Weekly):
		return Weekly, nil
	case string(Monthly):
		return Monthly, nil
	default:
		return "", fmt.Errorf("unknown recurrence %q (supported: DAILY, WEEKLY, MONTHLY)", s)
	}
}

// Days returns the fixed period length in days.
func (r Recurrence) Days() int {
	switch r {
	case Weekly:
		return 7
	case Monthly:
		return 30
	default:
		return 1
	}
}

// PeriodsPerYear returns how many periods of this cadence make a year.
// Used for per-period interest rates.
func (r Recurrence) PeriodsPerYear() int {
	switch r {
	case Weekly:
		return 52
	case Monthly:
		return 12
	default:
		return 365
	}
}

// Transaction is a single dated cash-flow event produced by expanding a rule.
// It is a value: generated once, never mutated.
type Transaction struct {
	Category string
	Date     time.Time
	Type     TransactionType
	Amount   decimal.Decimal
}

// Signed returns the amount with its direction applied: positive for income,
// negative for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s", t.Date.Format(DateLayout), t.Category, t.Type, t.Amount)
}

// DateLayout is the wire format for all rule and event dates.
const DateLayout = "2006-01-02"

// Date builds the canonical representation of a calendar day: midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day normalizes an arbitrary time to its calendar day.
func Day(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}
