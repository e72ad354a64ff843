package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

const namespace = "orderdesk"

// Metrics owns a dedicated Prometheus registry for the service.
type Metrics struct {
	registry *prometheus.Registry

	accountOps   *prometheus.CounterVec
	orderOps     *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New builds collectors and registers store size gauges backed by stats.
func New(store repository.Store) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		accountOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "accounts",
			Name:      "operations_total",
			Help:      "Account operations by outcome.",
		}, []string{"operation", "result"}),
		orderOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "operations_total",
			Help:      "Order operations by outcome.",
		}, []string{"operation", "result"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Order status changes by target status.",
		}, []string{"status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"method", "path"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.accountOps,
		m.orderOps,
		m.transitions,
		m.httpRequests,
		m.httpDuration,
		storeGauge(store, "accounts", func(s repository.Stats) int { return s.Accounts }),
		storeGauge(store, "orders", func(s repository.Stats) int { return s.Orders }),
	)

	return m
}

func storeGauge(store repository.Store, kind string, pick func(repository.Stats) int) prometheus.Collector {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   "store",
		Name:        "records",
		Help:        "Records currently held in memory.",
		ConstLabels: prometheus.Labels{"kind": kind},
	}, func() float64 {
		return float64(pick(store.Stats()))
	})
}

// AccountOperation counts an account operation outcome.
func (m *Metrics) AccountOperation(operation, result string) {
	m.accountOps.WithLabelValues(operation, result).Inc()
}

// OrderOperation counts an order operation outcome.
func (m *Metrics) OrderOperation(operation, result string) {
	m.orderOps.WithLabelValues(operation, result).Inc()
}

// OrderTransition counts a persisted status change.
func (m *Metrics) OrderTransition(status model.OrderStatus) {
	m.transitions.WithLabelValues(string(status)).Inc()
}

// ObserveHTTPRequest records a served request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
