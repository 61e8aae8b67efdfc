package dexscreener

import "github.com/shopspring/decimal"

// FindLargestPoolWithSol selects, from already-fetched pairs, the pool
// for the given token quoted in wrapped SOL with the highest USD
// liquidity. Pairs qualify only when their base token equals address
// and their quote token equals the configured SOL mint. Comparison is
// strict greater-than, so ties keep the first pair seen and a missing
// liquidity block counts as zero. Pure selection, no network access.
//
// The second return is false when no pair qualifies.
func (c *Client) FindLargestPoolWithSol(pairs []Pair, address string) (Pair, bool) {
	var (
		best  Pair
		found bool
	)
	bestLiquidity := decimal.NewFromInt(-1)

	for _, pair := range pairs {
		if pair.BaseToken.Address != address || pair.QuoteToken.Address != c.cfg.SOLMint {
			continue
		}
		liquidity := pair.usdLiquidity()
		if liquidity.GreaterThan(bestLiquidity) {
			best = pair
			bestLiquidity = liquidity
			found = true
		}
	}

	return best, found
}
