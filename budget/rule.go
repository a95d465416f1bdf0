package budget

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// Rule validation errors. Loaders wrap these with positional context;
// callers match with errors.Is.
var (
	ErrFinalBeforeInitial    = errors.New("final date before initial date")
	ErrNegativeAmount        = errors.New("amount must not be negative")
	ErrNonPositiveEvery      = errors.New("recurrence value must be positive")
	ErrUnsupportedRecurrence = errors.New("rule recurrence must be WEEKLY or MONTHLY")
)

// ExpectedTransaction is a recurring cash-flow rule: an amount that repeats
// every Every weeks or months from InitialDate up to, but not including,
// FinalDate. Rules are values and are never mutated after construction.
type ExpectedTransaction struct {
	Category    string
	InitialDate time.Time
	FinalDate   time.Time
	Type        TransactionType
	Recurrence  Recurrence
	Every       int
	Amount      decimal.Decimal
}

// NewExpectedTransaction builds a validated rule. Dates are normalized to
// UTC midnight.
func NewExpectedTransaction(category string, initial, final time.Time, typ TransactionType, rec Recurrence, every int, amount decimal.Decimal) (ExpectedTransaction, error) {
	e := ExpectedTransaction{
		Category:    category,
		InitialDate: Day(initial),
		FinalDate:   Day(final),
		Type:        typ,
		Recurrence:  rec,
		Every:       every,
		Amount:      amount,
	}
	if err := e.Validate(); err != nil {
		return ExpectedTransaction{}, err
	}
	return e, nil
}

// Validate checks the rule invariants. Equal initial and final dates are
// valid and describe a rule with no occurrences.
func (e ExpectedTransaction) Validate() error {
	if e.FinalDate.Before(e.InitialDate) {
		return fmt.Errorf("rule %q: %w", e.Category, ErrFinalBeforeInitial)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("rule %q: %w", e.Category, ErrNegativeAmount)
	}
	if e.Every <= 0 {
		return fmt.Errorf("rule %q: %w", e.Category, ErrNonPositiveEvery)
	}
	switch e.Type {
	case Income, Expense:
	default:
		return fmt.Errorf("rule %q: unknown transaction type %q", e.Category, e.Type)
	}
	switch e.Recurrence {
	case Weekly, Monthly:
	default:
		return fmt.Errorf("rule %q: %w (got %q)", e.Category, ErrUnsupportedRecurrence, e.Recurrence)
	}
	return nil
}

// Equal reports whether two rules describe the same expected cash flow.
func (e ExpectedTransaction) Equal(o ExpectedTransaction) bool {
	return e.Category == o.Category &&
		e.InitialDate.Equal(o.InitialDate) &&
		e.FinalDate.Equal(o.FinalDate) &&
		e.Type == o.Type &&
		e.Recurrence == o.Recurrence &&
		e.Every == o.Every &&
		e.Amount.Equal(o.Amount)
}

// Transactions yields the rule's dated occurrences in order: the initial
// date, then every Every-th week or calendar month after it, stopping
// strictly before FinalDate. The amount is carried unchanged onto every
// occurrence. The sequence is finite and can be ranged over any number of
// times.
func (e ExpectedTransaction) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for cur := e.InitialDate; cur.Before(e.FinalDate); cur = e.next(cur) {
			tx := Transaction{
				Category: e.Category,
				Date:     cur,
				Type:     e.Type,
				Amount:   e.Amount,
			}
			if !yield(tx) {
				return
			}
		}
	}
}

func (e ExpectedTransaction) next(cur time.Time) time.Time {
	if e.Recurrence == Monthly {
		return addMonths(cur, e.Every)
	}
	return cur.AddDate(0, 0, e.Recurrence.Days()*e.Every)
}

// addMonths advances a date by calendar months, clamping the day of month to
// the end of shorter months. Stepping continues from the clamped date: a
// Jan 31 monthly rule lands on Feb 28 (or 29 in leap years) and then Mar 28
// (or 29), not back on the 31st.
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return Date(first.Year(), first.Month(), d)
}
