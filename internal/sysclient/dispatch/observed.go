package dispatch

import (
	"net/http"
	"time"
)

// ObservedExecutor records metrics for every exchange of the wrapped executor.
type ObservedExecutor struct {
	executor HTTPExecutor
	metrics  RequestMetrics
}

// NewObservedExecutor wraps executor so each exchange is reported to metrics.
func NewObservedExecutor(executor HTTPExecutor, metrics RequestMetrics) *ObservedExecutor {
	return &ObservedExecutor{
		executor: executor,
		metrics:  metrics,
	}
}

func (e *ObservedExecutor) Do(req *http.Request) (resp *http.Response, err error) {
	started := time.Now()
	defer func() {
		code := 0
		if resp != nil {
			code = resp.StatusCode
		}
		e.metrics.ObserveRequest(req.Method, code, err, started)
	}()
	return e.executor.Do(req)
}
