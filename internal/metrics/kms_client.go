package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	kmsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kms_client",
		Name:      "operations_total",
		Help:      "Count of key management operations.",
	}, []string{"operation", "status"})
	kmsRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "kms_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of key management operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// KMSClient tracks metrics for signing gateway calls.
type KMSClient struct{}

func NewKMSClient() *KMSClient {
	return &KMSClient{}
}

// Observe records a single signing gateway call.
func (m KMSClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	kmsRequestsTotal.WithLabelValues(operation, status).Inc()
	kmsRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
