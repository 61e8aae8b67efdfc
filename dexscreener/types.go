package dexscreener

import "github.com/shopspring/decimal"

// tokensResponse is the /latest/dex/tokens response envelope.
type tokensResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// Pair is a single trading pair reported by DexScreener. Monetary
// fields are decoded as exact decimals: the provider serializes prices
// as strings and liquidity as bare numbers, and both forms decode
// without passing through float64.
type Pair struct {
	ChainID           string          `json:"chainId"`
	DexID             string          `json:"dexId"`
	URL               string          `json:"url"`
	PairAddress       string          `json:"pairAddress"`
	BaseToken         Token           `json:"baseToken"`
	QuoteToken        Token           `json:"quoteToken"`
	PriceNative       decimal.Decimal `json:"priceNative"`
	PriceUSD          decimal.Decimal `json:"priceUsd"`
	Liquidity         *Liquidity      `json:"liquidity"` // pointer: omitted for pools with no liquidity data
	Supply            decimal.Decimal `json:"supply"`
	FDV               decimal.Decimal `json:"fdv"`
	MarketCap         decimal.Decimal `json:"marketCap"`
	LastTradeUnixTime int64           `json:"lastTradeUnixTime"`
	PairCreatedAt     int64           `json:"pairCreatedAt"`
}

// Token identifies one side of a trading pair.
type Token struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Liquidity is the liquidity block of a pair.
type Liquidity struct {
	USD   decimal.Decimal `json:"usd"`
	Base  decimal.Decimal `json:"base"`
	Quote decimal.Decimal `json:"quote"`
}

// usdLiquidity returns the pair's USD liquidity, zero when the provider
// omitted the liquidity block.
func (p Pair) usdLiquidity() decimal.Decimal {
	if p.Liquidity == nil {
		return decimal.Zero
	}
	return p.Liquidity.USD
}
