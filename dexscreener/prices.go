package dexscreener

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"solana-market-data/marketdata"
	"solana-market-data/observability"
)

// FetchPrices fetches price and liquidity for a batch of token addresses
// from a single pair-based lookup. Every address is validated up front;
// one bad address aborts the whole batch before any request is sent.
//
// Each result entry is keyed by a pair's base-token address: Value is
// the pair's native-asset price and Liquidity its USD liquidity. When a
// token trades in several pairs, later pairs in the provider's response
// overwrite earlier ones (last-write-wins, not liquidity-ranked). Pairs
// whose base token was not requested are dropped, so the result keys
// are always a subset of the input.
func (c *Client) FetchPrices(ctx context.Context, addresses []string) (_ map[string]marketdata.PriceInfo, err error) {
	if err := validateAddresses(addresses); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		observability.RecordProviderCall(providerName, "tokens_bulk", time.Since(start).Seconds(), err)
	}()

	resp, err := c.call(ctx, strings.Join(addresses, ","))
	if err != nil {
		return nil, err
	}

	requested := make(map[string]struct{}, len(addresses))
	for _, address := range addresses {
		requested[address] = struct{}{}
	}

	prices := make(map[string]marketdata.PriceInfo, len(addresses))
	for _, pair := range resp.Pairs {
		if _, ok := requested[pair.BaseToken.Address]; !ok {
			// A requested token can appear as the quote side of foreign
			// pairs; those must not leak into the result.
			continue
		}
		prices[pair.BaseToken.Address] = marketdata.PriceInfo{
			Value:     pair.PriceNative,
			Liquidity: pair.usdLiquidity(),
		}
	}

	c.logger.Debug("fetched prices",
		zap.Int("requested", len(addresses)),
		zap.Int("pairs", len(resp.Pairs)),
		zap.Int("returned", len(prices)))

	return prices, nil
}
