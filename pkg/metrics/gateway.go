package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "npg",
			Subsystem: "provider",
			Name:      "request_duration_seconds",
			Help:      "NP Atobarai API call latency in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"operation"},
	)

	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "npg",
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Total number of NP Atobarai API calls",
		},
		[]string{"operation", "result"},
	)
)

func init() {
	Registry.MustRegister(ProviderRequestDuration, ProviderRequestsTotal)
}
