package birdeye

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"solana-market-data/marketdata"
	"solana-market-data/observability"
)

// FetchPrices fetches price and liquidity for a batch of token addresses
// in a single multi-price call. The result keys are a subset of the
// requested addresses: tokens the provider has no data for are omitted,
// not reported. No per-address validation happens here because the batch
// endpoint itself skips unknown or invalid addresses.
func (c *Client) FetchPrices(ctx context.Context, addresses []string) (_ map[string]marketdata.PriceInfo, err error) {
	if len(addresses) == 0 {
		return nil, marketdata.ErrEmptyAddresses
	}

	start := time.Now()
	defer func() {
		observability.RecordProviderCall(providerName, "multi_price", time.Since(start).Seconds(), err)
	}()

	requestURL := fmt.Sprintf("%s/defi/multi_price?list_address=%s",
		c.priceBaseURL, url.QueryEscape(strings.Join(addresses, ",")))

	data, err := c.call(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	// Decode with json.Number so price literals survive without passing
	// through float64.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var entries map[string]map[string]interface{}
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode price data: %w", err)
	}

	prices := make(map[string]marketdata.PriceInfo, len(addresses))
	for _, address := range addresses {
		entry := entries[address]
		if len(entry) == 0 {
			// Unknown to the provider, or known with no data. Skipped,
			// not an error.
			continue
		}

		value, err := decimalField(entry, "price")
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", address, err)
		}
		liquidity, err := decimalField(entry, "liquidity")
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", address, err)
		}

		prices[address] = marketdata.PriceInfo{Value: value, Liquidity: liquidity}
	}

	c.logger.Debug("fetched prices",
		zap.Int("requested", len(addresses)),
		zap.Int("returned", len(prices)))

	return prices, nil
}

// decimalField reads a decimal value from a decoded JSON object,
// accepting both number and string forms. Absent fields default to zero
// and null counts as absent.
func decimalField(entry map[string]interface{}, key string) (decimal.Decimal, error) {
	raw, ok := entry[key]
	if !ok || raw == nil {
		return decimal.Zero, nil
	}

	switch v := raw.(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("parse %s %q: %w", key, v.String(), err)
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("parse %s %q: %w", key, v, err)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("parse %s: unexpected type %T", key, raw)
	}
}
