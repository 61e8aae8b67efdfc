package dexscreener

import (
	"context"
	"time"

	"go.uber.org/zap"

	"solana-market-data/marketdata"
	"solana-market-data/observability"
)

// FetchTokenOverview fetches the descriptive overview for a single
// token. The overview is built from the FIRST pair in the provider's
// response regardless of pool depth; FindLargestPoolWithSol is not
// applied here. Price carries the pair's USD price, and supply and
// lastTradeUnixTime default to zero when the provider omits them.
func (c *Client) FetchTokenOverview(ctx context.Context, address string) (_ marketdata.TokenOverview, err error) {
	if err := validateAddress(address); err != nil {
		return marketdata.TokenOverview{}, err
	}

	start := time.Now()
	defer func() {
		observability.RecordProviderCall(providerName, "tokens", time.Since(start).Seconds(), err)
	}()

	resp, err := c.call(ctx, address)
	if err != nil {
		return marketdata.TokenOverview{}, err
	}
	if len(resp.Pairs) == 0 {
		return marketdata.TokenOverview{}, &marketdata.NoPairsFoundError{Address: address}
	}

	pair := resp.Pairs[0]
	overview := marketdata.TokenOverview{
		Price:             pair.PriceUSD,
		Symbol:            pair.BaseToken.Symbol,
		Decimals:          pair.BaseToken.Decimals,
		LastTradeUnixTime: pair.LastTradeUnixTime,
		Liquidity:         pair.usdLiquidity(),
		Supply:            pair.Supply,
	}

	c.logger.Debug("fetched token overview",
		zap.String("address", address),
		zap.String("pair", pair.PairAddress),
		zap.Int("pairs", len(resp.Pairs)))

	return overview, nil
}
