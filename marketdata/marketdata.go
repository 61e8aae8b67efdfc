// Package marketdata defines the shared shapes, the provider contract
// and the error taxonomy for Solana token market-data lookups.
package marketdata

import "github.com/shopspring/decimal"

// PriceInfo is an immutable price/liquidity snapshot for a single token.
// Liquidity keeps the reporting provider's own basis (USD for some
// providers, native asset for others); callers must not compare
// liquidity across providers without normalizing the basis first.
type PriceInfo struct {
	Value     decimal.Decimal // spot price
	Liquidity decimal.Decimal // pool liquidity, provider-reported basis
}

// TokenOverview is a descriptive snapshot of a single token, built from
// one provider response. Supply semantics are provider-defined and not
// guaranteed consistent across providers.
type TokenOverview struct {
	Price             decimal.Decimal // spot price
	Symbol            string          // token symbol
	Decimals          int             // on-chain decimal precision
	LastTradeUnixTime int64           // epoch seconds of the last observed trade
	Liquidity         decimal.Decimal // pool liquidity
	Supply            decimal.Decimal // circulating/total supply, provider-defined
}
