// Package metrics exposes application metrics collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatcherRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sysclient_dispatcher",
		Name:      "requests_total",
		Help:      "Count of HTTP requests sent to blockchain backends.",
	}, []string{"backend", "method", "code", "status"})
	dispatcherRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sysclient_dispatcher",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests sent to blockchain backends.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "method", "code", "status"})
)

// Dispatcher tracks metrics for HTTP requests issued by a system client.
type Dispatcher struct {
	backend string
}

// NewDispatcher constructs a metrics collector for one backend.
func NewDispatcher(backend string) *Dispatcher {
	if backend == "" {
		backend = "unknown"
	}
	return &Dispatcher{backend: backend}
}

// ObserveRequest records one HTTP exchange. A zero code means no response was received.
func (m Dispatcher) ObserveRequest(method string, code int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	codeLabel := "none"
	if code != 0 {
		codeLabel = strconv.Itoa(code)
	}

	dispatcherRequestsTotal.WithLabelValues(m.backend, method, codeLabel, status).Inc()
	dispatcherRequestDuration.WithLabelValues(m.backend, method, codeLabel, status).Observe(time.Since(started).Seconds())
}
