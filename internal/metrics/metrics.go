package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_admin_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	APIRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_admin_api_requests_total",
			Help: "Total number of requests sent to the ATS backend.",
		},
		[]string{"endpoint", "status"},
	)
	APIRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ats_admin_api_request_duration_seconds",
			Help:    "Duration of each ATS backend request in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
	NotificationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_admin_notifications_total",
			Help: "Total number of notifications posted per slot.",
		},
		[]string{"slot"},
	)
	StaleResponsesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ats_admin_stale_responses_total",
			Help: "Total number of listing responses discarded as stale.",
		},
	)
)

func StartMetricsServer() {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(APIRequestsCounter)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(NotificationsCounter)
	prometheus.MustRegister(StaleResponsesCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":8080", nil))
	}()
}
