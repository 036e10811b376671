package backend

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import "time"

type (
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
