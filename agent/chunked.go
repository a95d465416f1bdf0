package agent

import (
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/budgetsim/asset"
)

// ChunkedBuy splits the investable surplus into equal chunks of
// MinimumChunk, so a later liquidity squeeze can be met by selling a chunk
// or two instead of one large position. Any remainder folds into the last
// chunk; a surplus smaller than one chunk buys nothing. MinimumChunk must
// be positive and Open must be set.
type ChunkedBuy struct {
	MinimumBalance decimal.Decimal
	MinimumChunk   decimal.Decimal
	Open           Factory
}

func (p ChunkedBuy) DecideBuy(balance decimal.Decimal, holdings []asset.Asset, day int) []asset.Asset {
	investable := balance.Sub(p.MinimumBalance)
	if investable.LessThan(p.MinimumChunk) {
		return nil
	}

	chunks, remainder := investable.QuoRem(p.MinimumChunk, 0)
	n := int(chunks.IntPart())

	bought := make([]asset.Asset, 0, n)
	for i := 0; i < n; i++ {
		amount := p.MinimumChunk
		if i == n-1 {
			amount = amount.Add(remainder)
		}
		bought = append(bought, p.Open(amount))
	}
	return bought
}
