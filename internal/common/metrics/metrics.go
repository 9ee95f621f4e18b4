// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "api_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"endpoint"},
	)

	RegistryLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_registry_lookups_total",
			Help: "Total number of carrier registry lookups",
		},
		[]string{"result"},
	)

	OfferDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_offer_decisions_total",
			Help: "Total number of offer evaluations by decision",
		},
		[]string{"result"},
	)
)
