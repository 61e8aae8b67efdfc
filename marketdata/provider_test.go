package marketdata_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"solana-market-data/birdeye"
	"solana-market-data/dexscreener"
	"solana-market-data/marketdata"
)

// Both concrete clients satisfy the Provider contract, so callers can
// swap them without caring which upstream answers.
func TestProviderImplementations(t *testing.T) {
	providers := map[string]marketdata.Provider{
		"birdeye":     birdeye.NewClient(birdeye.Config{APIKey: "test-key"}),
		"dexscreener": dexscreener.NewClient(dexscreener.Config{}),
	}

	for name, provider := range providers {
		t.Run(name, func(t *testing.T) {
			// Empty input fails identically everywhere, before any
			// network traffic.
			_, err := provider.FetchPrices(context.Background(), nil)
			require.ErrorIs(t, err, marketdata.ErrEmptyAddresses)
		})
	}
}
