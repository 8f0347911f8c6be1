package metrics

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	ordersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders placed.",
		},
	)

	orderTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Order status changes by source and target status.",
		},
		[]string{"from", "to"},
	)

	orderTransitionRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_transition_rejections_total",
			Help: "Status changes refused by the order lifecycle.",
		},
	)

	cartConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_conflicts_total",
			Help: "Add-to-cart attempts refused because the cart holds another shop's items.",
		},
	)

	newOrderNotificationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "new_order_notifications_total",
			Help: "New-order alerts raised to shop dashboards.",
		},
	)

	liveOrderWatchers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "live_order_watchers",
			Help: "Open live order board subscriptions.",
		},
	)
)

func OrderCreated() {
	ordersCreatedTotal.Inc()
}

func OrderTransitioned(from, to string) {
	orderTransitionsTotal.WithLabelValues(from, to).Inc()
}

func OrderTransitionRejected() {
	orderTransitionRejectionsTotal.Inc()
}

func CartConflict() {
	cartConflictsTotal.Inc()
}

func NewOrderNotified() {
	newOrderNotificationsTotal.Inc()
}

func WatcherOpened() {
	liveOrderWatchers.Inc()
}

func WatcherClosed() {
	liveOrderWatchers.Dec()
}

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	rw.statusCode = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {

			duration := time.Since(start)
			pathPattern := routePattern(r)
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)

	})
}

// routePattern labels by the matched mux pattern so path ids do not explode cardinality.
// The mux fills r.Pattern in place, so this must run after the request is served.
func routePattern(r *http.Request) string {

	if r.Pattern == "" {
		return r.URL.Path
	}

	if _, path, ok := strings.Cut(r.Pattern, " "); ok {
		return path
	}

	return r.Pattern
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
