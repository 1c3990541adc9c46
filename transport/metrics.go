package transport

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swell_client_requests_total",
			Help: "Total number of API requests issued by the SDK",
		},
		[]string{"method", "host", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swell_client_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "host", "status"},
	)
)

// observeRequest records one completed (or failed) request. Status is the
// numeric HTTP status, or "error" when the request never produced a
// response.
func observeRequest(req *http.Request, status string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(req.Method, req.URL.Host, status).Inc()
	requestDuration.WithLabelValues(req.Method, req.URL.Host, status).Observe(elapsed.Seconds())
}
