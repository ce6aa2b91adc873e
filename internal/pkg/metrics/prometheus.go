package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "complyaudit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "complyaudit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "complyaudit",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Workflow metrics
	workflowTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "complyaudit",
			Subsystem: "workflow",
			Name:      "transitions_total",
			Help:      "Total number of remediation workflow operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	batchApplySize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "complyaudit",
			Subsystem: "workflow",
			Name:      "batch_apply_size",
			Help:      "Number of findings attempted per batch apply",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	// Scoring metrics
	scoringEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "complyaudit",
			Subsystem: "scoring",
			Name:      "evaluations_total",
			Help:      "Total number of framework scoring evaluations",
		},
		[]string{"framework", "status"},
	)

	// Store metrics
	storeOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "complyaudit",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Persistence store operation duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordWorkflowTransition records a workflow operation outcome
func RecordWorkflowTransition(operation, outcome string) {
	workflowTransitionsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordBatchApplySize records the number of findings attempted in a batch
func RecordBatchApplySize(attempted int) {
	batchApplySize.Observe(float64(attempted))
}

// RecordScoringEvaluation records a framework scoring evaluation
func RecordScoringEvaluation(framework, status string) {
	scoringEvaluationsTotal.WithLabelValues(framework, status).Inc()
}

// RecordStoreOperation records a persistence store operation duration
func RecordStoreOperation(operation string, duration time.Duration) {
	storeOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
