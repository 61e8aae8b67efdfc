// Package dexscreener implements the DexScreener market-data provider:
// pair-based price and liquidity lookups for Solana tokens, plus a
// pool-selection helper for picking the deepest SOL-quoted pool.
package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"solana-market-data/marketdata"
	"solana-market-data/solana"
)

// DefaultBaseURL is the DexScreener API base URL. No authentication is
// required.
const DefaultBaseURL = "https://api.dexscreener.io"

const providerName = "dexscreener"

// HTTPClient describes an HTTP client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the static configuration for a Client.
type Config struct {
	SOLMint string // wrapped-SOL mint used as the quote side in pool filtering
}

// Client calls the DexScreener HTTP API. A Client is safe for
// concurrent use.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient HTTPClient
	logger     *zap.Logger
}

var _ marketdata.Provider = (*Client)(nil)

// ClientOption configures Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new DexScreener client.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	if cfg.SOLMint == "" {
		cfg.SOLMint = solana.WSOLMint
	}

	c := &Client{
		cfg:        cfg,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// validateAddress rejects an empty or syntactically invalid address
// before any request is made.
func validateAddress(address string) error {
	if address == "" {
		return marketdata.ErrEmptyAddresses
	}
	if !solana.IsAddress(address) {
		return &marketdata.InvalidAddressError{Address: address}
	}
	return nil
}

// validateAddresses applies validateAddress to every element.
// Validation is all-or-nothing: one bad address aborts the whole batch
// before any request is sent.
func validateAddresses(addresses []string) error {
	if len(addresses) == 0 {
		return marketdata.ErrEmptyAddresses
	}
	for _, address := range addresses {
		if err := validateAddress(address); err != nil {
			return err
		}
	}
	return nil
}

// call performs a GET against the tokens endpoint and decodes the pairs
// envelope. A non-OK status is reported as *marketdata.ProviderCallError.
func (c *Client) call(ctx context.Context, addressList string) (*tokensResponse, error) {
	url := c.baseURL + "/latest/dex/tokens/" + addressList
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &marketdata.ProviderCallError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var decoded tokensResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &decoded, nil
}
