package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "spot_booking"

const OutcomeOK = "ok"

type Metrics struct {
	gatherer prometheus.Gatherer

	bookingOps   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers the collectors on reg; reg doubles as the /metrics source.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		bookingOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_operations_total",
				Help:      "Booking lifecycle operations by operation and outcome kind.",
			},
			[]string{"op", "outcome"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route and status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
	reg.MustRegister(m.bookingOps, m.httpDuration)
	return m
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return reg
}

// ObserveBooking counts one lifecycle call. An empty outcome means success.
func (m *Metrics) ObserveBooking(op, outcome string) {
	if outcome == "" {
		outcome = OutcomeOK
	}
	m.bookingOps.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
