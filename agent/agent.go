// Package agent holds the decision layer of a simulation: pure policies
// that look at the day's situation and decide what to liquidate and what
// to acquire.
package agent

import (
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/budgetsim/asset"
)

// SellPolicy decides which holdings to liquidate today. Implementations
// must be pure functions of their arguments: no mutation of holdings, no
// randomness, no clock. Decisions are index-aligned with holdings; true
// marks a holding for sale. Policies must only mark holdings whose
// Sellable() is true; the engine trusts the decision and does not
// re-check.
type SellPolicy interface {
	DecideSell(balance decimal.Decimal, holdings []asset.Asset, day int) []bool
}

// BuyPolicy decides which new assets to acquire today, after sells have
// settled into the balance. Implementations must be pure. The combined
// value of the returned assets must not exceed balance: the engine treats
// an overspending policy as a fatal simulation error.
type BuyPolicy interface {
	DecideBuy(balance decimal.Decimal, holdings []asset.Asset, day int) []asset.Asset
}

// Factory opens a new instrument for an investment amount. Buy policies
// take one instead of hard-coding instrument parameters, so the same
// policy can trade any product.
type Factory func(amount decimal.Decimal) asset.Asset

// Agent pairs a sell policy with a buy policy.
type Agent struct {
	Sell SellPolicy
	Buy  BuyPolicy
}

// Noop returns an agent that never trades. With it a run is pure cash-flow
// accounting, which makes it the natural baseline for comparisons.
func Noop() Agent {
	return Agent{Sell: NoopSell{}, Buy: NoopBuy{}}
}
