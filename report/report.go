// Package report derives human-readable summaries from simulation
// results. The engine records raw history; everything presentational
// (totals, drawdown, monthly breakdowns, currency formatting) lives
// here.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/budgetsim/budget"
	"github.com/rustyeddy/budgetsim/sim"
)

// Summary condenses one run. Interest is derived by conservation: every
// cent of net worth beyond the opening balance and the net cash flow
// was produced by asset interest.
type Summary struct {
	StartDate time.Time
	EndDate   time.Time
	Days      int

	StartBalance  decimal.Decimal
	FinalBalance  decimal.Decimal
	FinalAssets   decimal.Decimal
	FinalNetWorth decimal.Decimal

	Income      decimal.Decimal
	Expenses    decimal.Decimal
	NetCashFlow decimal.Decimal
	Interest    decimal.Decimal

	Buys     int
	Sells    int
	Invested decimal.Decimal
	Divested decimal.Decimal

	MinBalance     decimal.Decimal
	MinBalanceDate time.Time

	MaxDrawdown    decimal.Decimal
	MaxDrawdownPct decimal.Decimal
}

// MonthlyCashflow aggregates executed transactions for one calendar
// month.
type MonthlyCashflow struct {
	Month    time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Summarize walks a completed result once and fills every Summary
// field.
func Summarize(res *sim.Result) Summary {
	s := Summary{
		StartDate:     res.StartDate,
		EndDate:       res.EndDate,
		Days:          res.Days(),
		StartBalance:  res.StartBalance,
		FinalBalance:  res.FinalBalance(),
		FinalAssets:   res.FinalAssetValue(),
		FinalNetWorth: res.FinalNetWorth(),
		Income:        decimal.Zero,
		Expenses:      decimal.Zero,
		NetCashFlow:   decimal.Zero,
		Invested:      decimal.Zero,
		Divested:      decimal.Zero,
	}

	for _, ev := range res.Events {
		switch ev.Type {
		case budget.Income:
			s.Income = s.Income.Add(ev.Amount)
		case budget.Expense:
			s.Expenses = s.Expenses.Add(ev.Amount)
		}
	}
	s.NetCashFlow = s.Income.Sub(s.Expenses)
	s.Interest = s.FinalNetWorth.Sub(s.StartBalance).Sub(s.NetCashFlow)

	for _, tr := range res.Trades {
		switch tr.Side {
		case sim.Buy:
			s.Buys++
			s.Invested = s.Invested.Add(tr.Value)
		case sim.Sell:
			s.Sells++
			s.Divested = s.Divested.Add(tr.Value)
		}
	}

	s.MinBalance = res.StartBalance
	s.MinBalanceDate = res.StartDate
	for day := 0; day < res.Days(); day++ {
		if b := res.BalanceAt(day); b.LessThan(s.MinBalance) {
			s.MinBalance = b
			s.MinBalanceDate = res.Date(day)
		}
	}

	s.MaxDrawdown, s.MaxDrawdownPct = drawdown(res)
	return s
}

// drawdown returns the deepest peak-to-trough drop of the daily net
// worth series, absolute and as a percentage of the peak.
func drawdown(res *sim.Result) (abs, pct decimal.Decimal) {
	abs, pct = decimal.Zero, decimal.Zero
	if res.Days() == 0 {
		return abs, pct
	}

	peak := res.NetWorthAt(0)
	for day := 1; day < res.Days(); day++ {
		nw := res.NetWorthAt(day)
		if nw.GreaterThan(peak) {
			peak = nw
			continue
		}
		if drop := peak.Sub(nw); drop.GreaterThan(abs) {
			abs = drop
			if peak.Sign() > 0 {
				pct = drop.Div(peak).Mul(decimal.NewFromInt(100))
			}
		}
	}
	return abs, pct
}

// Monthly aggregates the executed history by calendar month, in order.
// Months without any transaction do not appear.
func Monthly(res *sim.Result) []MonthlyCashflow {
	var out []MonthlyCashflow

	for _, ev := range res.Events {
		month := budget.Date(ev.Date.Year(), ev.Date.Month(), 1)
		if len(out) == 0 || !out[len(out)-1].Month.Equal(month) {
			out = append(out, MonthlyCashflow{
				Month:    month,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
				Net:      decimal.Zero,
			})
		}

		cur := &out[len(out)-1]
		switch ev.Type {
		case budget.Income:
			cur.Income = cur.Income.Add(ev.Amount)
		case budget.Expense:
			cur.Expenses = cur.Expenses.Add(ev.Amount)
		}
		cur.Net = cur.Income.Sub(cur.Expenses)
	}

	return out
}
