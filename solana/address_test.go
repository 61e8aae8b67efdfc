package solana

import (
	"bytes"
	"testing"

	"github.com/mr-tron/base58"
)

func TestIsAddress_Valid(t *testing.T) {
	valid := []string{
		WSOLMint,
		"11111111111111111111111111111111", // system program, 32 zero bytes
		base58.Encode(bytes.Repeat([]byte{0xab}, 32)),
	}

	for _, addr := range valid {
		if !IsAddress(addr) {
			t.Errorf("expected %q to be a valid address", addr)
		}
	}
}

func TestIsAddress_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"abc",
		// characters outside the base58 alphabet
		"0OIl",
		// 42 base58 chars can never carry a full 32-byte payload
		"So1111111111111111111111111111111111111112",
		// right alphabet, wrong payload sizes
		base58.Encode(bytes.Repeat([]byte{0xab}, 31)),
		base58.Encode(bytes.Repeat([]byte{0xab}, 33)),
		"not a base58 address at all",
	}

	for _, addr := range invalid {
		if IsAddress(addr) {
			t.Errorf("expected %q to be rejected", addr)
		}
	}
}

func TestIsOnCurve(t *testing.T) {
	// 32 zero bytes encode y=0, a valid curve point.
	if !IsOnCurve("11111111111111111111111111111111") {
		t.Error("expected the system program address to be on-curve")
	}

	// No curve point has the y coordinate this pattern encodes.
	offCurve := base58.Encode(bytes.Repeat([]byte{0x02}, 32))
	if IsOnCurve(offCurve) {
		t.Errorf("expected %q to be off-curve", offCurve)
	}

	// Anything that is not a 32-byte address is off-curve by definition.
	if IsOnCurve("tooshort") {
		t.Error("expected a short string to be off-curve")
	}
	if IsOnCurve("") {
		t.Error("expected an empty string to be off-curve")
	}
}
