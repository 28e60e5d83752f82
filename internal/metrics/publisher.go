package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "publisher",
		Name:      "messages_total",
		Help:      "Count of outbound envelopes by topic and outcome.",
	}, []string{"topic", "status"})
	publishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "publisher",
		Name:      "publish_duration_seconds",
		Help:      "Duration of publishing one envelope, retries included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"topic", "status"})
	consumeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "consumer",
		Name:      "messages_total",
		Help:      "Count of inbound messages by topic and outcome.",
	}, []string{"topic", "outcome"})
)

// Consumer outcomes.
const (
	OutcomeHandled  = "handled"
	OutcomeRejected = "rejected"
	OutcomeDropped  = "dropped"
)

// Bus tracks metrics for the event-bus transport.
type Bus struct{}

func NewBus() *Bus {
	return &Bus{}
}

// ObservePublish records one outbound envelope.
func (m Bus) ObservePublish(topic string, err error, started time.Time) {
	status := statusOf(err)
	publishTotal.WithLabelValues(topic, status).Inc()
	publishDuration.WithLabelValues(topic, status).Observe(time.Since(started).Seconds())
}

// ObserveConsume records what happened to one inbound message.
func (m Bus) ObserveConsume(topic, outcome string) {
	consumeTotal.WithLabelValues(topic, outcome).Inc()
}
