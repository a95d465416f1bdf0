package agent

import (
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/budgetsim/asset"
)

// NoopSell never liquidates anything.
type NoopSell struct{}

func (NoopSell) DecideSell(balance decimal.Decimal, holdings []asset.Asset, day int) []bool {
	return make([]bool, len(holdings))
}

// NoopBuy never acquires anything.
type NoopBuy struct{}

func (NoopBuy) DecideBuy(balance decimal.Decimal, holdings []asset.Asset, day int) []asset.Asset {
	return nil
}
