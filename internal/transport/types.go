package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

type (
	// Backend is the part of sysclient.Client the gateway serves.
	Backend interface {
		GetBlockchains(ctx context.Context, mainnet *bool) ([]model.Blockchain, error)
		GetBlockchain(ctx context.Context, id string) (model.Blockchain, error)
		GetTransactionHistory(ctx context.Context, blockchainID, address string) ([]model.TransactionHistory, error)
		GetTransactions(ctx context.Context, query sysclient.TransactionsQuery) ([]model.Transaction, error)
		GetTransaction(ctx context.Context, id string, includeRaw, includeProof bool) (model.Transaction, error)
		CreateTransaction(ctx context.Context, blockchainID string, data []byte, identifier string) (model.TransactionIdentifier, error)
	}
)
