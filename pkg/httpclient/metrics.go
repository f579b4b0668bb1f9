package httpclient

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medi_client_requests_total",
			Help: "Total number of outgoing API requests by method and status (0 = transport failure)",
		},
		[]string{"method", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medi_client_request_duration_seconds",
			Help:    "Outgoing API request duration in seconds, including retries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	breakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "medi_client_breaker_state",
			Help: "Current state of the transport circuit breaker (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, breakerState)
}

func observeRequest(method string, status int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
