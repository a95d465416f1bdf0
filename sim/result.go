package sim

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/budgetsim/asset"
	"github.com/rustyeddy/budgetsim/budget"
)

// Side says which way an agent trade went.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// TradeRecord is one agent transaction: an asset bought or sold at its
// value on that day.
type TradeRecord struct {
	Date  time.Time
	Asset string
	Side  Side
	Value decimal.Decimal
}

// Result is the complete outcome of one run: the executed cash-flow
// events, the agent trades, one balance and one holdings valuation per
// simulated day, and the holdings surviving at the end. It is read-only
// once Run returns; series are addressable by day index or calendar date.
type Result struct {
	StartDate    time.Time
	EndDate      time.Time
	StartBalance decimal.Decimal

	// Events holds every applied cash-flow event, in intake order.
	Events []budget.Transaction
	// Trades holds every agent transaction, in execution order. Sells on
	// a given day precede that day's buys.
	Trades []TradeRecord
	// Balances[i] is the cash balance at the end of day i's trading,
	// before holdings step. AssetValues[i] is the holdings valuation at
	// the same moment.
	Balances    []decimal.Decimal
	AssetValues []decimal.Decimal
	// Holdings are the assets still held at the end of the run, valued as
	// of the end date.
	Holdings []asset.Asset
}

// Days is the number of simulated days. A run over an empty span has zero.
func (r *Result) Days() int { return len(r.Balances) }

// Date maps a day index to its calendar date.
func (r *Result) Date(i int) time.Time { return r.StartDate.AddDate(0, 0, i) }

// DayOf maps a calendar date to its day index. The second return is false
// when the date falls outside the simulated span.
func (r *Result) DayOf(date time.Time) (int, bool) {
	d := budget.Day(date)
	if d.Before(r.StartDate) {
		return 0, false
	}
	i := int(d.Sub(r.StartDate) / (24 * time.Hour))
	if i >= r.Days() {
		return 0, false
	}
	return i, true
}

// BalanceAt returns the cash balance recorded for day index i.
func (r *Result) BalanceAt(i int) decimal.Decimal { return r.Balances[i] }

// BalanceOn returns the cash balance recorded for a calendar date.
func (r *Result) BalanceOn(date time.Time) (decimal.Decimal, bool) {
	i, ok := r.DayOf(date)
	if !ok {
		return decimal.Decimal{}, false
	}
	return r.Balances[i], true
}

// AssetValueAt returns the holdings valuation recorded for day index i.
func (r *Result) AssetValueAt(i int) decimal.Decimal { return r.AssetValues[i] }

// AssetValueOn returns the holdings valuation recorded for a calendar date.
func (r *Result) AssetValueOn(date time.Time) (decimal.Decimal, bool) {
	i, ok := r.DayOf(date)
	if !ok {
		return decimal.Decimal{}, false
	}
	return r.AssetValues[i], true
}

// NetWorthAt returns cash plus holdings for day index i.
func (r *Result) NetWorthAt(i int) decimal.Decimal {
	return r.Balances[i].Add(r.AssetValues[i])
}

// EventsOn returns the cash-flow events applied on a calendar date.
func (r *Result) EventsOn(date time.Time) []budget.Transaction {
	d := budget.Day(date)
	var out []budget.Transaction
	for _, ev := range r.Events {
		if ev.Date.Equal(d) {
			out = append(out, ev)
		}
	}
	return out
}

// TradesOn returns the agent trades executed on a calendar date.
func (r *Result) TradesOn(date time.Time) []TradeRecord {
	d := budget.Day(date)
	var out []TradeRecord
	for _, tr := range r.Trades {
		if tr.Date.Equal(d) {
			out = append(out, tr)
		}
	}
	return out
}

// FinalBalance is the cash balance after the last simulated day, or the
// starting balance for an empty span.
func (r *Result) FinalBalance() decimal.Decimal {
	if len(r.Balances) == 0 {
		return r.StartBalance
	}
	return r.Balances[len(r.Balances)-1]
}

// FinalAssetValue is the value of the surviving holdings as of the end
// date, including interest credited on the last simulated day.
func (r *Result) FinalAssetValue() decimal.Decimal {
	total := decimal.Zero
	for _, h := range r.Holdings {
		total = total.Add(h.Value())
	}
	return total
}

// FinalNetWorth is final cash plus final holdings value.
func (r *Result) FinalNetWorth() decimal.Decimal {
	return r.FinalBalance().Add(r.FinalAssetValue())
}
