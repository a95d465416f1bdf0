package agent

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/budgetsim/asset"
)

// ConservativeSell keeps the cash balance above a floor while liquidating
// as little as possible. When balance falls below MinimumBalance it sells
// the smallest sellable holdings first until the shortfall is covered.
// When even the whole sellable set cannot cover it, everything sellable is
// sold and the shortfall stands; that is an accepted outcome, not an error.
type ConservativeSell struct {
	MinimumBalance decimal.Decimal
}

func (p ConservativeSell) DecideSell(balance decimal.Decimal, holdings []asset.Asset, day int) []bool {
	decisions := make([]bool, len(holdings))

	target := p.MinimumBalance.Sub(balance)
	if target.Sign() <= 0 {
		return decisions
	}

	type candidate struct {
		index int
		value decimal.Decimal
	}
	var sellable []candidate
	for i, h := range holdings {
		if h.Sellable() {
			sellable = append(sellable, candidate{index: i, value: h.Value()})
		}
	}
	// Smallest first; equal values keep holding order.
	sort.SliceStable(sellable, func(i, j int) bool {
		return sellable[i].value.LessThan(sellable[j].value)
	})

	raised := decimal.Zero
	for _, c := range sellable {
		decisions[c.index] = true
		raised = raised.Add(c.value)
		if raised.GreaterThanOrEqual(target) {
			break
		}
	}
	// If the loop ran dry the target was unreachable and every sellable
	// holding is marked.
	return decisions
}

// ConservativeBuy locks the whole investable surplus into a single
// instrument once the surplus strictly exceeds MinimumInvestment.
// Open must be set.
type ConservativeBuy struct {
	MinimumBalance    decimal.Decimal
	MinimumInvestment decimal.Decimal
	Open              Factory
}

func (p ConservativeBuy) DecideBuy(balance decimal.Decimal, holdings []asset.Asset, day int) []asset.Asset {
	investable := balance.Sub(p.MinimumBalance)
	if investable.LessThanOrEqual(p.MinimumInvestment) {
		return nil
	}
	return []asset.Asset{p.Open(investable)}
}
