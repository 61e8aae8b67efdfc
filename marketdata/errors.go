package marketdata

import (
	"errors"
	"fmt"
	"strings"
)

// Input errors shared by all providers.
var (
	// ErrEmptyAddresses is returned when a lookup is invoked with no
	// token addresses.
	ErrEmptyAddresses = errors.New("no token addresses provided")
)

// InvalidAddressError reports an address that fails Solana address
// syntax validation. It is returned before any network call is made.
type InvalidAddressError struct {
	Address string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid solana address %q", e.Address)
}

// ProviderCallError reports an upstream call that did not succeed:
// a non-OK status, or an OK response whose envelope flags logical
// failure.
type ProviderCallError struct {
	Provider   string // provider name, e.g. "birdeye"
	StatusCode int    // HTTP status of the response
	Message    string // response body or provider-reported message
}

func (e *ProviderCallError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s call failed with status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s call failed with status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// NoPairsFoundError reports a pair-based lookup that returned zero
// trading pairs for an address expected to have at least one.
type NoPairsFoundError struct {
	Address string
}

func (e *NoPairsFoundError) Error() string {
	return fmt.Sprintf("no trading pairs found for %s", e.Address)
}

// SchemaMismatchError reports a provider payload that drifted from the
// expected shape: required fields absent, fields whose values do not
// decode into the schema type, or fields the schema does not know.
// Drift fails loudly instead of being absorbed into zero values.
type SchemaMismatchError struct {
	Provider   string
	Missing    []string // required fields absent from the payload
	Mistyped   []string // fields whose values fail to decode into the schema type
	Unexpected []string // payload fields not part of the schema
}

func (e *SchemaMismatchError) Error() string {
	parts := make([]string, 0, 3)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Mistyped) > 0 {
		parts = append(parts, "mistyped fields: "+strings.Join(e.Mistyped, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected fields: "+strings.Join(e.Unexpected, ", "))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s response schema mismatch", e.Provider)
	}
	return fmt.Sprintf("%s response schema mismatch: %s", e.Provider, strings.Join(parts, "; "))
}
