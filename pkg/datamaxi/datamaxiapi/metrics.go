package datamaxiapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestLatencyMetrics = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "datamaxi_request_duration_milliseconds",
			Help:    "DataMaxi+ API request duration from request to response in milliseconds",
			Buckets: prometheus.ExponentialBuckets(25, 2, 10), // 25ms to ~12.8s
		}, []string{"path"},
	)

	requestTotalMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datamaxi_request_total",
			Help: "Total number of DataMaxi+ API requests by status code",
		}, []string{"path", "status_code"},
	)
)

func init() {
	prometheus.MustRegister(
		requestLatencyMetrics,
		requestTotalMetrics,
	)
}

func observeRequest(path string, statusCode int, duration time.Duration) {
	requestTotalMetrics.With(prometheus.Labels{
		"path":        path,
		"status_code": strconv.Itoa(statusCode),
	}).Inc()

	requestLatencyMetrics.With(prometheus.Labels{
		"path": path,
	}).Observe(float64(duration.Milliseconds()))
}

// observeRequestError counts the requests that never got a response
func observeRequestError(path string) {
	requestTotalMetrics.With(prometheus.Labels{
		"path":        path,
		"status_code": "error",
	}).Inc()
}
