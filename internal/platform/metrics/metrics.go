// Package metrics owns the Prometheus registry and the collectors the board
// pipeline and the HTTP surface report into. A nil *Metrics is a no-op sink
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eventboard"

// Metrics groups every collector on a private registry
type Metrics struct {
	reg *prometheus.Registry

	pages      prometheus.Counter
	documents  prometheus.Counter
	failures   *prometheus.CounterVec
	fetchDur   prometheus.Histogram
	boardSize  *prometheus.GaugeVec
	lastLoad   prometheus.Gauge
	renders    *prometheus.CounterVec
	reqTotal   *prometheus.CounterVec
	reqLatency *prometheus.HistogramVec
}

// New builds the collectors on a fresh registry. withRuntime adds the Go and
// process collectors
func New(withRuntime bool) *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		pages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "pages_total",
			Help:      "Pages received from the document source",
		}),
		documents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "documents_total",
			Help:      "Documents received from the document source",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "failures_total",
			Help:      "Aborted fetches by error code",
		}, []string{"code"}),
		fetchDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "duration_seconds",
			Help:      "Wall time of a full paginated fetch",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		boardSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "board",
			Name:      "records",
			Help:      "Records on the loaded board by category; category=\"all\" is the total",
		}, []string{"category"}),
		lastLoad: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "board",
			Name:      "last_load_timestamp_seconds",
			Help:      "Unix time the board was last loaded",
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Board renders by surface and selector",
		}, []string{"surface", "category"}),
		reqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		reqLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.reg.MustRegister(
		m.pages, m.documents, m.failures, m.fetchDur,
		m.boardSize, m.lastLoad, m.renders,
		m.reqTotal, m.reqLatency,
	)
	if withRuntime {
		m.reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// Registry exposes the underlying registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// PageFetched records one received page holding n documents
func (m *Metrics) PageFetched(n int) {
	if m == nil {
		return
	}
	m.pages.Inc()
	m.documents.Add(float64(n))
}

// FetchDone records the duration of a fetch; code is empty on success
func (m *Metrics) FetchDone(elapsed time.Duration, code string) {
	if m == nil {
		return
	}
	m.fetchDur.Observe(elapsed.Seconds())
	if code != "" {
		m.failures.WithLabelValues(code).Inc()
	}
}

// BoardLoaded publishes the per category counts of a freshly loaded board
func (m *Metrics) BoardLoaded(at time.Time, byCategory map[string]int, total int) {
	if m == nil {
		return
	}
	m.boardSize.Reset()
	for cat, n := range byCategory {
		m.boardSize.WithLabelValues(cat).Set(float64(n))
	}
	m.boardSize.WithLabelValues("all").Set(float64(total))
	m.lastLoad.Set(float64(at.Unix()))
}

// Rendered counts one render on surface (html, json, tui, file)
func (m *Metrics) Rendered(surface, category string) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(surface, category).Inc()
}

// ObserveRequest implements the access log observer
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.reqTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.reqLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}
