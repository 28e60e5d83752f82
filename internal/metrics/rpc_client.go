package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bc_adapter"

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node and bundler RPC operations.",
	}, []string{"operation", "chain", "role", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node and bundler RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "role", "status"})
)

// RPCClient tracks metrics for RPC calls to one chain endpoint.
type RPCClient struct {
	chain string
	role  string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(chain, role string) *RPCClient {
	return &RPCClient{chain: orUnknown(chain), role: orUnknown(role)}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	rpcRequestsTotal.WithLabelValues(operation, m.chain, m.role, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.chain, m.role, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
