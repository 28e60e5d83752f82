package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orchestrator",
		Name:      "requests_total",
		Help:      "Count of handled requests by use case and response code.",
	}, []string{"usecase", "code"})
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "orchestrator",
		Name:      "request_duration_seconds",
		Help:      "Duration of handling a request up to its response.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"usecase", "status"})
	respondFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orchestrator",
		Name:      "respond_failures_total",
		Help:      "Count of responses that could not be published.",
	}, []string{"usecase"})

	depositsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "deposit_tracker",
		Name:      "deposits_total",
		Help:      "Count of externally observed deposits by match outcome.",
	}, []string{"chain", "outcome"})
	journalFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "deposit_journal",
		Name:      "flush_total",
		Help:      "Count of deposit journal flushes.",
	}, []string{"status"})
	journalFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "deposit_journal",
		Name:      "flush_size",
		Help:      "Number of rows written per deposit journal flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
)

// Deposit outcomes.
const (
	DepositMatched   = "matched"
	DepositUnmatched = "unmatched"
	DepositError     = "error"
)

// Orchestrator tracks metrics for one use case.
type Orchestrator struct {
	usecase string
}

func NewOrchestrator(usecase string) *Orchestrator {
	return &Orchestrator{usecase: orUnknown(usecase)}
}

// ObserveRequest records the response code of a handled request. An empty code means success.
func (m Orchestrator) ObserveRequest(code string, started time.Time) {
	status := "success"
	if code != "" {
		status = "error"
	} else {
		code = "OK"
	}
	requestsTotal.WithLabelValues(m.usecase, code).Inc()
	requestDuration.WithLabelValues(m.usecase, status).Observe(time.Since(started).Seconds())
}

// ObserveRespondFailure records a response that was lost.
func (m Orchestrator) ObserveRespondFailure() {
	respondFailuresTotal.WithLabelValues(m.usecase).Inc()
}

// ObserveDeposit records the match outcome of a pushed deposit.
func (m Orchestrator) ObserveDeposit(chain, outcome string) {
	depositsTotal.WithLabelValues(orUnknown(chain), outcome).Inc()
}

// DepositJournal tracks metrics for journal flushes.
type DepositJournal struct{}

func NewDepositJournal() *DepositJournal {
	return &DepositJournal{}
}

// ObserveFlush records one flush of size rows.
func (m DepositJournal) ObserveFlush(err error, size int) {
	journalFlushTotal.WithLabelValues(statusOf(err)).Inc()
	if err == nil {
		journalFlushSize.Observe(float64(size))
	}
}
