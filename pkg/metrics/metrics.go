// Package metrics exposes Prometheus instrumentation for the HTTP layer
// and the café domain (orders, payments, table occupancy).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verandah",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by method, path, and status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "verandah",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	// OrdersCreated counts new orders by order type (dine-in, takeaway).
	OrdersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verandah",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Orders created, by order type.",
	}, []string{"order_type"})

	// OrdersCompleted counts orders transitioned to a terminal status.
	OrdersCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verandah",
		Subsystem: "orders",
		Name:      "finished_total",
		Help:      "Orders that reached a terminal status (completed or cancelled).",
	}, []string{"status"})

	// PaymentsRecorded counts payments by method and resulting status.
	PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verandah",
		Subsystem: "payments",
		Name:      "recorded_total",
		Help:      "Payments recorded, by method and status.",
	}, []string{"method", "status"})

	// TablesOccupied tracks how many tables are currently occupied.
	TablesOccupied = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "verandah",
		Subsystem: "tables",
		Name:      "occupied",
		Help:      "Number of tables currently occupied.",
	})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and latency. routePattern extracts a
// low-cardinality path label (the chi route pattern, not the raw URL).
func Middleware(routePattern func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sr, r)

			path := routePattern(r)
			if path == "" {
				path = "unmatched"
			}
			httpRequests.WithLabelValues(r.Method, path, strconv.Itoa(sr.status)).Inc()
			httpDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
