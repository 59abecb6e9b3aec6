// Package monitoring holds the prometheus instruments for client calls.
// Instrumentation is optional: a Client without metrics records nothing.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	RequestErrors   *prometheus.CounterVec
	Requests        *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "apibay_request_duration_seconds",
			Help:    "Duration of API requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30},
		}, []string{"endpoint"}),
		RequestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apibay_request_errors_total",
			Help: "Number of failed API requests",
		}, []string{"endpoint"}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apibay_requests_total",
			Help: "Number of API requests",
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) Register() {
	prometheus.MustRegister(m.RequestDuration)
	prometheus.MustRegister(m.RequestErrors)
	prometheus.MustRegister(m.Requests)
}
