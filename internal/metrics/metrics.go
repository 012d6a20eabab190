package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "threadgenius_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "threadgenius_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "threadgenius_generations_total",
			Help: "Total number of content generation attempts.",
		},
		[]string{"type", "status"},
	)

	CompletionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "threadgenius_completion_duration_seconds",
			Help:    "Completion API call duration in seconds.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"type"},
	)

	QuotaExhaustedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "threadgenius_quota_exhausted_total",
			Help: "Total number of requests rejected because the daily limit was reached.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		GenerationsTotal,
		CompletionDuration,
		QuotaExhaustedTotal,
	)
}
