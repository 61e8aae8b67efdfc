// Package config loads the process-wide static configuration for the
// market-data clients from the environment, with optional .env support.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"solana-market-data/birdeye"
	"solana-market-data/dexscreener"
	"solana-market-data/solana"
)

// Environment variable names.
const (
	EnvBirdeyeAPIKey = "BIRD_EYE_TOKEN"
	EnvSOLMint       = "SOL_MINT"
)

// Config is loaded once at startup and treated as immutable for the
// process lifetime. It replaces ambient environment lookups inside the
// clients: values flow explicitly into the client constructors.
type Config struct {
	BirdeyeAPIKey string // Birdeye API key; absence surfaces on first call, not here
	SOLMint       string // wrapped-SOL mint used for pool filtering
	Chain         string // chain identifier sent to Birdeye
}

// Load reads configuration from a .env file in the working directory
// (when present) and the process environment. Variables already set in
// the environment take precedence over the file. A missing API key is
// not an error: the provider reports it as an authentication failure on
// first use.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		BirdeyeAPIKey: os.Getenv(EnvBirdeyeAPIKey),
		SOLMint:       os.Getenv(EnvSOLMint),
		Chain:         birdeye.DefaultChain,
	}
	if cfg.SOLMint == "" {
		cfg.SOLMint = solana.WSOLMint
	}
	return cfg, nil
}

// Birdeye returns the client configuration for the Birdeye provider.
func (c Config) Birdeye() birdeye.Config {
	return birdeye.Config{APIKey: c.BirdeyeAPIKey, Chain: c.Chain}
}

// DexScreener returns the client configuration for the DexScreener
// provider.
func (c Config) DexScreener() dexscreener.Config {
	return dexscreener.Config{SOLMint: c.SOLMint}
}
