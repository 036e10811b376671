package explorer

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
)

type (
	// Fetcher performs the follow-up lookups a transaction record needs.
	Fetcher interface {
		RawTransaction(ctx context.Context, hash string) ([]byte, error)
		Transaction(ctx context.Context, hash string) (jsonview.Object, error)
	}
)
