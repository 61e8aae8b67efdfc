package birdeye

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"solana-market-data/marketdata"
	"solana-market-data/observability"
	"solana-market-data/solana"
)

// overviewPayload is the raw token-overview data object. Every field is
// required; pointer fields distinguish absent keys from legitimate zero
// values such as decimals=0.
type overviewPayload struct {
	Price             *decimal.Decimal `json:"price" validate:"required"`
	Symbol            *string          `json:"symbol" validate:"required"`
	Decimals          *int             `json:"decimals" validate:"required"`
	LastTradeUnixTime *int64           `json:"lastTradeUnixTime" validate:"required"`
	Liquidity         *decimal.Decimal `json:"liquidity" validate:"required"`
	Supply            *decimal.Decimal `json:"supply" validate:"required"`
}

// validate reports payload fields by their JSON names.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}()

// FetchTokenOverview fetches the descriptive overview for a single
// token. The overview payload must match the expected schema exactly:
// missing or null required fields, values that fail to decode into the
// schema type, and unknown extra fields are all reported as
// *marketdata.SchemaMismatchError rather than absorbed into zero
// values.
func (c *Client) FetchTokenOverview(ctx context.Context, address string) (_ marketdata.TokenOverview, err error) {
	if !solana.IsAddress(address) {
		return marketdata.TokenOverview{}, &marketdata.InvalidAddressError{Address: address}
	}

	start := time.Now()
	defer func() {
		observability.RecordProviderCall(providerName, "token_overview", time.Since(start).Seconds(), err)
	}()

	data, err := c.call(ctx, fmt.Sprintf("%s/v1/token-overview/%s", c.overviewBaseURL, address))
	if err != nil {
		return marketdata.TokenOverview{}, err
	}

	overview, err := decodeOverview(data)
	if err != nil {
		return marketdata.TokenOverview{}, err
	}

	c.logger.Debug("fetched token overview",
		zap.String("address", address),
		zap.String("symbol", overview.Symbol))

	return overview, nil
}

// decodeOverview decodes the overview data object, enforcing the schema
// strictly: missing required fields, mistyped values and unknown keys
// are all reported, together, as one *marketdata.SchemaMismatchError.
func decodeOverview(data json.RawMessage) (marketdata.TokenOverview, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return marketdata.TokenOverview{}, fmt.Errorf("decode overview data: %w", err)
	}

	// Decode known fields one at a time so a mistyped value is pinned to
	// its key instead of aborting the whole payload.
	var payload overviewPayload
	fields := map[string]interface{}{
		"price":             &payload.Price,
		"symbol":            &payload.Symbol,
		"decimals":          &payload.Decimals,
		"lastTradeUnixTime": &payload.LastTradeUnixTime,
		"liquidity":         &payload.Liquidity,
		"supply":            &payload.Supply,
	}

	var unexpected []string
	for key := range raw {
		if _, ok := fields[key]; !ok {
			unexpected = append(unexpected, key)
		}
	}
	sort.Strings(unexpected)

	mistypedSet := make(map[string]struct{})
	for key, target := range fields {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			mistypedSet[key] = struct{}{}
		}
	}
	mistyped := make([]string, 0, len(mistypedSet))
	for key := range mistypedSet {
		mistyped = append(mistyped, key)
	}
	sort.Strings(mistyped)

	var missing []string
	if err := validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return marketdata.TokenOverview{}, fmt.Errorf("validate overview: %w", err)
		}
		for _, fe := range verrs {
			// A field that failed to decode is mistyped, not missing.
			if _, ok := mistypedSet[fe.Field()]; ok {
				continue
			}
			missing = append(missing, fe.Field())
		}
	}

	if len(missing) > 0 || len(mistyped) > 0 || len(unexpected) > 0 {
		return marketdata.TokenOverview{}, &marketdata.SchemaMismatchError{
			Provider:   providerName,
			Missing:    missing,
			Mistyped:   mistyped,
			Unexpected: unexpected,
		}
	}

	return marketdata.TokenOverview{
		Price:             *payload.Price,
		Symbol:            *payload.Symbol,
		Decimals:          *payload.Decimals,
		LastTradeUnixTime: *payload.LastTradeUnixTime,
		Liquidity:         *payload.Liquidity,
		Supply:            *payload.Supply,
	}, nil
}
