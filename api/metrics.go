package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the server's prometheus collectors
type Metrics struct {
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	estimates *prometheus.CounterVec
	discounts *prometheus.CounterVec
	reports   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webdev_cost",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "webdev_cost",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webdev_cost",
			Name:      "estimates_total",
			Help:      "Estimates computed by site type, client type and outcome.",
		}, []string{"site_type", "client_type", "outcome"}),
		discounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webdev_cost",
			Name:      "discounts_total",
			Help:      "Discount calculations by applied discount.",
		}, []string{"discount"}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webdev_cost",
			Name:      "reports_total",
			Help:      "Report exports by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.requests, m.duration, m.estimates, m.discounts, m.reports)
	return m
}

// ObserveEstimate counts one estimate request
func (m *Metrics) ObserveEstimate(siteType, clientType string, err error) {
	m.estimates.WithLabelValues(siteType, clientType, outcome(err)).Inc()
}

// ObserveDiscount counts one discount calculation
func (m *Metrics) ObserveDiscount(applied string) {
	m.discounts.WithLabelValues(applied).Inc()
}

// ObserveReport counts one report export
func (m *Metrics) ObserveReport(err error) {
	m.reports.WithLabelValues(outcome(err)).Inc()
}

// Middleware records request counts and latency under the chi route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
