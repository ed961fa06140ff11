// Package metrics exposes Prometheus HTTP metrics for the web service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/louisbranch/foodgram/internal/services/web/platform/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "foodgram_web"

// RouteLabel maps a request to a bounded route label. Unknown paths must
// collapse to a fixed value so label cardinality stays bounded.
type RouteLabel func(*http.Request) string

// HTTP holds request counters and latency histograms.
type HTTP struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
	route    RouteLabel
}

// New registers HTTP metrics plus Go and process collectors on a fresh
// registry.
func New(route RouteLabel) (*HTTP, error) {
	if route == nil {
		route = func(*http.Request) string { return "other" }
	}
	m := &HTTP{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests served by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route and method.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
		route: route,
	}
	for _, collector := range []prometheus.Collector{
		m.requests,
		m.duration,
		m.inFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware records one observation per request. A panicking request is
// recorded with status 500 before the panic continues to RecoverPanic.
func (m *HTTP) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			m.inFlight.Inc()
			defer m.inFlight.Dec()

			sw := httpx.NewStatusWriter(w)
			defer func() {
				status := sw.Status()
				recovered := recover()
				if recovered != nil {
					status = http.StatusInternalServerError
				}
				route := m.route(r)
				m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
				m.duration.WithLabelValues(route, r.Method).Observe(time.Since(started).Seconds())
				if recovered != nil {
					panic(recovered)
				}
			}()
			next.ServeHTTP(sw, r)
		})
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *HTTP) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
