package marketdata

import "context"

// Provider is the capability set shared by all market-data providers:
// bulk price lookup plus single-token overview. Implementations are
// interchangeable; callers pick one at wiring time and treat results
// identically.
//
// FetchPrices returns a map whose keys are a subset of the requested
// addresses. Providers silently omit tokens they hold no data for, and
// a missing key is indistinguishable from an address never requested.
type Provider interface {
	FetchPrices(ctx context.Context, addresses []string) (map[string]PriceInfo, error)
	FetchTokenOverview(ctx context.Context, address string) (TokenOverview, error)
}
