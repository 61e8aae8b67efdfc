// Package birdeye implements the Birdeye market-data provider: bulk
// multi-price lookups and single-token overviews for Solana tokens.
package birdeye

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"solana-market-data/marketdata"
)

// Default configuration values. The multi-price and token-overview APIs
// live on different hosts.
const (
	DefaultPriceBaseURL    = "https://public-api.birdeye.so"
	DefaultOverviewBaseURL = "https://api.birdeye.so"
	DefaultChain           = "solana"
)

const providerName = "birdeye"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=birdeye_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the static configuration for a Client.
type Config struct {
	APIKey string // API key sent as X-API-KEY on every request
	Chain  string // x-chain header value, defaults to "solana"
}

// Client calls the Birdeye HTTP API. An empty API key is not rejected at
// construction; it surfaces as an authentication failure on first call.
// A Client is safe for concurrent use.
type Client struct {
	cfg             Config
	priceBaseURL    string
	overviewBaseURL string
	httpClient      HTTPClient
	logger          *zap.Logger
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

// WithPriceBaseURL overrides the multi-price API base URL.
func WithPriceBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.priceBaseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithOverviewBaseURL overrides the token-overview API base URL.
func WithOverviewBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.overviewBaseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Birdeye client.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	if cfg.Chain == "" {
		cfg.Chain = DefaultChain
	}

	c := &Client{
		cfg:             cfg,
		priceBaseURL:    DefaultPriceBaseURL,
		overviewBaseURL: DefaultOverviewBaseURL,
		httpClient:      http.DefaultClient,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiResponse is the Birdeye response envelope.
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call performs a GET request and decodes the {success, data} envelope.
// A non-OK status and a success=false envelope are both reported as
// *marketdata.ProviderCallError; neither yields partial data.
func (c *Client) call(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-chain", c.cfg.Chain)
	req.Header.Set("X-API-KEY", c.cfg.APIKey)

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

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = "provider reported failure"
		}
		return nil, &marketdata.ProviderCallError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	return envelope.Data, nil
}
