package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clientOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sysclient",
		Name:      "operations_total",
		Help:      "Count of system client operations.",
	}, []string{"operation", "backend", "status"})
	clientOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sysclient",
		Name:      "operation_duration_seconds",
		Help:      "Duration of system client operations.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 240},
	}, []string{"operation", "backend", "status"})
)

// Client tracks metrics for system client operations.
type Client struct {
	backend string
}

// NewClient constructs a metrics collector for system client operations.
func NewClient(backend string) *Client {
	if backend == "" {
		backend = "unknown"
	}
	return &Client{backend: backend}
}

// Observe records a single operation outcome and duration.
func (m Client) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	clientOperationsTotal.WithLabelValues(operation, m.backend, status).Inc()
	clientOperationDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}
