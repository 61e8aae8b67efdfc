// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"solana-market-data/marketdata"
)

// Metrics holds all Prometheus metrics for the library.
type Metrics struct {
	// Provider call metrics
	ProviderRequests *prometheus.CounterVec
	ProviderErrors   *prometheus.CounterVec
	RequestLatency   *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "solana_market_data"
	}

	return &Metrics{
		ProviderRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Total number of provider API calls",
		}, []string{"provider", "endpoint"}),
		ProviderErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "errors_total",
			Help:      "Total number of failed provider API calls by error kind",
		}, []string{"provider", "endpoint", "kind"}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "request_latency_seconds",
			Help:      "Provider API call latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider", "endpoint"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordProviderCall records the outcome of one provider API call.
// Metrics never alter control flow; the error is observed, not handled.
func RecordProviderCall(provider, endpoint string, seconds float64, err error) {
	DefaultMetrics.ProviderRequests.WithLabelValues(provider, endpoint).Inc()
	DefaultMetrics.RequestLatency.WithLabelValues(provider, endpoint).Observe(seconds)
	if err != nil {
		DefaultMetrics.ProviderErrors.WithLabelValues(provider, endpoint, errorKind(err)).Inc()
	}
}

// errorKind maps an error to a stable metric label value.
func errorKind(err error) string {
	var (
		invalidAddress *marketdata.InvalidAddressError
		providerCall   *marketdata.ProviderCallError
		noPairs        *marketdata.NoPairsFoundError
		schemaMismatch *marketdata.SchemaMismatchError
	)

	switch {
	case errors.Is(err, marketdata.ErrEmptyAddresses):
		return "empty_input"
	case errors.As(err, &invalidAddress):
		return "invalid_address"
	case errors.As(err, &providerCall):
		return "provider_call"
	case errors.As(err, &noPairs):
		return "no_pairs"
	case errors.As(err, &schemaMismatch):
		return "schema_mismatch"
	default:
		return "transport"
	}
}
