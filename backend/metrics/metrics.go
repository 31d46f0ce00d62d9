// ABOUTME: Prometheus collectors for HTTP traffic and design calculations
// ABOUTME: Registers against a caller-supplied registry and serves /metrics

package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/markalston/drone-design-calculator/backend/models"
)

// Collector bundles the service's Prometheus metrics
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
	Calculations  *prometheus.CounterVec
	Warnings      *prometheus.CounterVec
	RateLimited   prometheus.Counter
}

// NewCollector registers the service metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dronecalc_http_requests_total",
			Help: "Total HTTP requests, labeled by method, route, and status code.",
		}, []string{"method", "route", "code"}),
		HTTPDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dronecalc_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "route"}),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dronecalc_calculations_total",
			Help: "Design calculations performed, labeled by metric variant.",
		}, []string{"variant"}),
		Warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dronecalc_design_warnings_total",
			Help: "Design warnings emitted, labeled by severity.",
		}, []string{"severity"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dronecalc_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		}),
	}

	for _, col := range []prometheus.Collector{c.HTTPRequests, c.HTTPDurations, c.Calculations, c.Warnings, c.RateLimited} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}

	return c, nil
}

// Handler serves the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// ObserveCalculation records one computed design and its warnings
func (c *Collector) ObserveCalculation(m models.DesignMetrics) {
	if c == nil {
		return
	}
	c.Calculations.WithLabelValues(string(m.Variant)).Inc()
	for _, w := range m.Warnings {
		c.Warnings.WithLabelValues(w.Severity).Inc()
	}
}

// ObserveRateLimited records one rejected request
func (c *Collector) ObserveRateLimited() {
	if c == nil {
		return
	}
	c.RateLimited.Inc()
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument returns middleware recording request count and latency under
// the given route pattern. A nil collector passes requests through.
func (c *Collector) Instrument(route string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if c == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next(rec, r)

			c.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			c.HTTPDurations.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		}
	}
}
