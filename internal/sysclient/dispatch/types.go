package dispatch

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"net/http"
	"time"
)

type (
	// HTTPExecutor performs HTTP exchanges; *http.Client satisfies it.
	HTTPExecutor interface {
		Do(req *http.Request) (*http.Response, error)
	}

	// RequestMetrics records HTTP exchanges.
	RequestMetrics interface {
		ObserveRequest(method string, code int, err error, started time.Time)
	}
)
