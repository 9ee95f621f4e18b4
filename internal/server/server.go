// internal/server/server.go
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carrier-sales-api/internal/carriers"
	"carrier-sales-api/internal/common/logger"
	"carrier-sales-api/internal/common/metrics"
	"carrier-sales-api/internal/common/observability"
	"carrier-sales-api/internal/loads"
)

// Server wires the three endpoints to their collaborators. Requests share no
// mutable state: the load store is read-only and the verifier is stateless.
type Server struct {
	store    loads.Store
	verifier *carriers.Verifier
	logger   logger.Logger
	obs      *observability.Observability
	router   chi.Router
}

func New(store loads.Store, verifier *carriers.Verifier, log logger.Logger, obs *observability.Observability) *Server {
	s := &Server{
		store:    store,
		verifier: verifier,
		logger:   log.WithFields(map[string]interface{}{"component": "http-server"}),
		obs:      obs,
	}
	s.router = s.buildRouter()
	return s
}

// Handler returns the HTTP handler for the service.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.instrument)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/loads", s.handleLookupLoad)
	r.Get("/loads/{reference_number}", s.handleGetLoad)
	r.Post("/verify-carrier", s.handleVerifyCarrier)
	r.Post("/evaluate-offer", s.handleEvaluateOffer)

	return r
}

// requestID attaches an identifier to each request for log correlation,
// honoring an incoming X-Request-ID.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		endpoint := chi.RouteContext(r.Context()).RoutePattern()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := http.StatusText(rec.status)
		duration := time.Since(start)

		metrics.HTTPRequestsTotal.WithLabelValues(endpoint, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
		if s.obs != nil {
			s.obs.RecordRequest(r.Context(), endpoint, status)
			s.obs.RecordRequestDuration(r.Context(), duration, endpoint)
		}

		s.logger.Info("request handled", map[string]interface{}{
			"method":     r.Method,
			"endpoint":   endpoint,
			"status":     rec.status,
			"durationMs": duration.Milliseconds(),
			"requestId":  w.Header().Get("X-Request-ID"),
		})
	})
}
