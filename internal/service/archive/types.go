package archive

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/emitter"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

type (
	TransactionSource interface {
		GetTransactions(ctx context.Context, query sysclient.TransactionsQuery) ([]model.Transaction, error)
	}
	Repository interface {
		InsertTransactions(ctx context.Context, txs []model.Transaction) error
		InsertTransfers(ctx context.Context, transfers []model.Transfer) error
		KnownTransactionHashes(ctx context.Context, blockchainID string, hashes []string) (map[string]struct{}, error)
		MaxSyncedHeight(ctx context.Context, blockchainID string) (uint64, error)
	}
	Emitter interface {
		Emit(ctx context.Context, events []emitter.TransactionEvent) error
	}
	SyncMetrics interface {
		ObserveSync(blockchainID string, err error, newTransactions int, started time.Time)
	}
)
