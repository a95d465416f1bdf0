// Package sim drives day-stepped simulations of a personal budget: the
// scheduled cash flows of a rule set, an agent deciding trades, and the
// assets the agent holds, advanced one day at a time over a half-open date
// span.
//
// A run is deterministic by construction. The engine takes no clock, no
// randomness and performs no I/O, so identical inputs produce identical
// Results byte for byte.
package sim

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/budgetsim/agent"
	"github.com/rustyeddy/budgetsim/asset"
	"github.com/rustyeddy/budgetsim/budget"
)

// Engine is the immutable configuration of a simulation: the date span,
// the pre-expanded cash-flow schedule and the deciding agent. Every Run
// works on its own fresh state, so one Engine may run repeatedly, or from
// several goroutines at once, for what-if comparisons.
type Engine struct {
	start  time.Time
	end    time.Time
	agent  agent.Agent
	events []budget.Transaction
}

// NewEngine builds an engine for the span [start, end): the end date is
// never simulated. Dates normalize to UTC midnight; an end before start is
// an error, while equal dates make a valid zero-day engine. Rules are
// re-validated so hand-built rule values cannot smuggle in bad data. Nil
// agent policies default to the no-op ones.
func NewEngine(start, end time.Time, rules []budget.ExpectedTransaction, ag agent.Agent) (*Engine, error) {
	start = budget.Day(start)
	end = budget.Day(end)
	if end.Before(start) {
		return nil, fmt.Errorf("new engine: end date %s before start date %s",
			end.Format(budget.DateLayout), start.Format(budget.DateLayout))
	}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("new engine: %w", err)
		}
	}
	if ag.Sell == nil {
		ag.Sell = agent.NoopSell{}
	}
	if ag.Buy == nil {
		ag.Buy = agent.NoopBuy{}
	}
	return &Engine{
		start:  start,
		end:    end,
		agent:  ag,
		events: budget.Schedule(rules),
	}, nil
}

// Start returns the first simulated day.
func (e *Engine) Start() time.Time { return e.start }

// End returns the exclusive end of the simulated span.
func (e *Engine) End() time.Time { return e.end }

// Run simulates every day of the span and returns the recorded histories.
// Each day runs in a fixed order: scheduled cash flows settle into the
// balance, the agent's sell decisions execute, then its buy decisions,
// then the day's balance and holdings valuation are recorded and every
// holding ages by one day.
//
// The only runtime failure is a *PolicyViolationError, raised when the
// agent's purchases cost more than the cash on hand.
func (e *Engine) Run(startBalance decimal.Decimal) (*Result, error) {
	res := &Result{
		StartDate:    e.start,
		EndDate:      e.end,
		StartBalance: startBalance,
	}

	balance := startBalance
	var holdings []asset.Asset

	// Events dated before the span are never applied; the cursor only
	// moves forward, so no date is visited twice.
	cursor := 0
	for cursor < len(e.events) && e.events[cursor].Date.Before(e.start) {
		cursor++
	}

	for day, date := 0, e.start; date.Before(e.end); day, date = day+1, date.AddDate(0, 0, 1) {
		// Intake: settle everything scheduled up to today.
		for cursor < len(e.events) && !e.events[cursor].Date.After(date) {
			ev := e.events[cursor]
			balance = balance.Add(ev.Signed())
			res.Events = append(res.Events, ev)
			cursor++
		}

		// Sell phase. Decisions are index-aligned with holdings; the
		// agent's word is final, so a sale executes at current value with
		// no sellability re-check.
		decisions := e.agent.Sell.DecideSell(balance, holdings, day)
		if anyTrue(decisions) {
			kept := make([]asset.Asset, 0, len(holdings))
			for i, h := range holdings {
				if i < len(decisions) && decisions[i] {
					balance = balance.Add(h.Value())
					res.Trades = append(res.Trades, TradeRecord{
						Date:  date,
						Asset: h.Name(),
						Side:  Sell,
						Value: h.Value(),
					})
					continue
				}
				kept = append(kept, h)
			}
			holdings = kept
		}

		// Buy phase, on the post-sell balance.
		bought := e.agent.Buy.DecideBuy(balance, holdings, day)
		if len(bought) > 0 {
			cost := decimal.Zero
			for _, a := range bought {
				cost = cost.Add(a.Value())
			}
			if cost.GreaterThan(balance) {
				return nil, &PolicyViolationError{Day: day, Date: date, Cost: cost, Balance: balance}
			}
			balance = balance.Sub(cost)
			for _, a := range bought {
				res.Trades = append(res.Trades, TradeRecord{
					Date:  date,
					Asset: a.Name(),
					Side:  Buy,
					Value: a.Value(),
				})
				holdings = append(holdings, a)
			}
		}

		// Record the day, then let every holding age once.
		res.Balances = append(res.Balances, balance)
		res.AssetValues = append(res.AssetValues, totalValue(holdings))
		for _, h := range holdings {
			h.Step()
		}
	}

	res.Holdings = holdings
	return res, nil
}

// PolicyViolationError aborts a run whose buy policy proposed purchases
// costing more than the available balance.
type PolicyViolationError struct {
	Day     int
	Date    time.Time
	Cost    decimal.Decimal
	Balance decimal.Decimal
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("policy violation on %s (day %d): buy cost %s exceeds balance %s",
		e.Date.Format(budget.DateLayout), e.Day, e.Cost, e.Balance)
}

func totalValue(holdings []asset.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.Value())
	}
	return total
}

func anyTrue(decisions []bool) bool {
	for _, d := range decisions {
		if d {
			return true
		}
	}
	return false
}
