package metrics

import (
	"net/http"
	"strconv"
	"time"

	"hotel/shared/failure"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotel"

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeDeclined = "declined"
	OutcomeError    = "error"
)

// Metrics owns its registry so tests and multiple instances never collide on the default one.
type Metrics struct {
	registry      *prometheus.Registry
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	operations    *prometheus.CounterVec
	storageWrites *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "operations_total", Help: "Domain operations by outcome."},
			[]string{"operation", "outcome"}, // outcome: ok|not_found|invalid|declined|error
		),
		storageWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "storage_writes_total", Help: "Collection saves."},
			[]string{"collection", "result"},
		),
	}

	m.registry.MustRegister(m.httpRequests, m.httpLatency, m.operations, m.storageWrites)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// ObserveOperation counts a domain operation such as "booking.create" by the kind of its result.
func (m *Metrics) ObserveOperation(operation string, err error) {
	m.operations.WithLabelValues(operation, Outcome(err)).Inc()
}

func (m *Metrics) ObserveStorageWrite(collection string, err error) {
	result := OutcomeOK
	if err != nil {
		result = OutcomeError
	}

	m.storageWrites.WithLabelValues(collection, result).Inc()
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case failure.IsNotFound(err):
		return OutcomeNotFound
	case failure.IsBadRequest(err):
		return OutcomeInvalid
	case failure.IsConflict(err):
		return OutcomeDeclined
	default:
		return OutcomeError
	}
}
