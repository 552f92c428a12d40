package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics records backend API call outcomes per route.
type RequestMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewRequestMetrics registers the API request metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewRequestMetrics(reg prometheus.Registerer) *RequestMetrics {
	if reg == nil {
		return &RequestMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_api_request_duration_seconds",
		Help:    "Duration of backend API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_api_request_success",
		Help: "Successful backend API requests.",
	}, []string{"route"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_api_request_failure",
		Help: "Failed backend API requests.",
	}, []string{"route"})
	reg.MustRegister(duration, success, failure)
	return &RequestMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// Observe records one request outcome.
func (m *RequestMetrics) Observe(route string, elapsed time.Duration, err error) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
	if err != nil {
		m.failure.WithLabelValues(route).Inc()
		return
	}
	m.success.WithLabelValues(route).Inc()
}
