// Package solana provides syntactic validation helpers for Solana
// addresses.
package solana

import (
	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// WSOLMint is the canonical wrapped-SOL mint address. It is the default
// quote mint when filtering trading pools against SOL.
const WSOLMint = "So11111111111111111111111111111111111111112"

// IsAddress reports whether s is syntactically a valid Solana address:
// base58-encoded and exactly 32 bytes once decoded. On-chain existence
// is never checked.
func IsAddress(s string) bool {
	decoded, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(decoded) == 32
}

// IsOnCurve reports whether s decodes to a valid ed25519 curve point.
// Regular keypair addresses are on-curve while program-derived addresses
// are not, so this classifies an address without any network access.
// IsAddress remains the only gate applied before provider calls.
func IsOnCurve(s string) bool {
	decoded, err := base58.Decode(s)
	if err != nil || len(decoded) != 32 {
		return false
	}
	_, err = new(edwards25519.Point).SetBytes(decoded)
	return err == nil
}
