// Package metrics expone las métricas Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	rateLimited         prometheus.Counter

	listingQueries *prometheus.CounterVec
	listingResults *prometheus.HistogramVec

	catalogSitters   prometheus.Gauge
	catalogRequests  prometheus.Gauge
	catalogRefreshes prometheus.Counter
	catalogLoadedAt  prometheus.Gauge

	catalogChanges *prometheus.CounterVec
}

type Option func(*Manager)

func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

func WithHistogramBuckets(b []float64) Option {
	return func(m *Manager) {
		if len(b) > 0 {
			m.buckets = b
		}
	}
}

// WithRegistry permite un registry propio (tests).
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "sitters",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.init()
	return m
}

func (m *Manager) init() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.buckets,
	}, []string{"route", "method"})

	m.rateLimited = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-IP rate limiter",
	})

	m.listingQueries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "listings",
		Name:      "queries_total",
		Help:      "Listing queries by entity kind",
	}, []string{"kind"})

	m.listingResults = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "listings",
		Name:      "results",
		Help:      "Number of entries returned by a listing query",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
	}, []string{"kind"})

	m.catalogSitters = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "catalog",
		Name:      "sitters",
		Help:      "Sitters in the current catalog snapshot",
	})

	m.catalogRequests = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "catalog",
		Name:      "requests",
		Help:      "Requests in the current catalog snapshot",
	})

	m.catalogRefreshes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "catalog",
		Name:      "refreshes_total",
		Help:      "Catalog snapshot refreshes",
	})

	m.catalogLoadedAt = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "catalog",
		Name:      "loaded_at_unix",
		Help:      "Unix time of the last catalog snapshot",
	})

	m.catalogChanges = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "catalog",
		Name:      "changes_total",
		Help:      "Catalog change notifications by kind and direction",
	}, []string{"kind", "direction"})
}

// Handler sirve /metrics para el registry del manager.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Manager) ObserveHTTP(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

func (m *Manager) RateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

func (m *Manager) ObserveListing(kind string, results int) {
	if m == nil {
		return
	}
	m.listingQueries.WithLabelValues(kind).Inc()
	m.listingResults.WithLabelValues(kind).Observe(float64(results))
}

func (m *Manager) ObserveCatalog(sitters, requests int, loadedAt time.Time) {
	if m == nil {
		return
	}
	m.catalogRefreshes.Inc()
	m.catalogSitters.Set(float64(sitters))
	m.catalogRequests.Set(float64(requests))
	m.catalogLoadedAt.Set(float64(loadedAt.Unix()))
}

// CatalogChange cuenta notificaciones; direction es "published" o "consumed".
func (m *Manager) CatalogChange(kind, direction string) {
	if m == nil {
		return
	}
	m.catalogChanges.WithLabelValues(kind, direction).Inc()
}
