// Package sysclient defines the contracts shared by every blockchain system client backend.
package sysclient

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

type (
	// Client is the operation surface every backend exposes. Operations a backend does not offer
	// return an error matching model.ErrUnsupported.
	Client interface {
		GetBlockchains(ctx context.Context, mainnet *bool) ([]model.Blockchain, error)
		GetBlockchain(ctx context.Context, id string) (model.Blockchain, error)

		GetCurrencies(ctx context.Context, blockchainID *string, mainnet *bool) ([]model.Currency, error)
		GetCurrency(ctx context.Context, id string) (model.Currency, error)

		GetSubscriptions(ctx context.Context) ([]model.Subscription, error)
		GetSubscription(ctx context.Context, id string) (model.Subscription, error)
		GetOrCreateSubscription(ctx context.Context, subscription model.Subscription) (model.Subscription, error)
		CreateSubscription(ctx context.Context, subscription model.Subscription) (model.Subscription, error)
		UpdateSubscription(ctx context.Context, subscription model.Subscription) (model.Subscription, error)
		DeleteSubscription(ctx context.Context, id string) error

		GetTransfers(ctx context.Context, query TransfersQuery) ([]model.Transfer, error)
		GetTransfer(ctx context.Context, id string) (model.Transfer, error)

		GetTransactionHistory(ctx context.Context, blockchainID, address string) ([]model.TransactionHistory, error)
		GetTransactions(ctx context.Context, query TransactionsQuery) ([]model.Transaction, error)
		GetTransaction(ctx context.Context, id string, includeRaw, includeProof bool) (model.Transaction, error)
		CreateTransaction(ctx context.Context, blockchainID string, data []byte, identifier string) (model.TransactionIdentifier, error)
		EstimateTransactionFee(ctx context.Context, blockchainID string, data []byte) (model.TransactionFee, error)

		GetBlocks(ctx context.Context, query BlocksQuery) ([]model.Block, error)
		GetBlock(ctx context.Context, id string, opts BlockOptions) (model.Block, error)

		GetAddresses(ctx context.Context, blockchainID, publicKey string) ([]model.Address, error)
		GetAddress(ctx context.Context, blockchainID, address string, timestamp *uint64) (model.Address, error)
		CreateAddress(ctx context.Context, blockchainID string, data []byte) (model.Address, error)

		GetHederaAccount(ctx context.Context, blockchainID, publicKey string) ([]model.HederaAccount, error)
		CreateHederaAccount(ctx context.Context, blockchainID, publicKey string) ([]model.HederaAccount, error)

		// CancelAll aborts every request in flight on this client.
		CancelAll()
	}

	// Mapper converts backend JSON objects into model records. A false result with a nil error
	// means the object is not a valid record; an error reports a failed nested fetch.
	Mapper interface {
		Blockchain(ctx context.Context, o jsonview.Object) (model.Blockchain, bool, error)
		Currency(ctx context.Context, o jsonview.Object) (model.Currency, bool, error)
		Transfer(ctx context.Context, o jsonview.Object) (model.Transfer, bool, error)
		Transaction(ctx context.Context, o jsonview.Object) (model.Transaction, bool, error)
		Block(ctx context.Context, o jsonview.Object) (model.Block, bool, error)
		Subscription(ctx context.Context, o jsonview.Object) (model.Subscription, bool, error)
		Address(ctx context.Context, o jsonview.Object) (model.Address, bool, error)
		HederaAccount(ctx context.Context, o jsonview.Object) (model.HederaAccount, bool, error)
		TransactionHistory(ctx context.Context, o jsonview.Object) ([]model.TransactionHistory, bool, error)
		TransactionIdentifier(ctx context.Context, o jsonview.Object) (model.TransactionIdentifier, bool, error)
		TransactionFee(ctx context.Context, o jsonview.Object) (model.TransactionFee, bool, error)
	}
)

// Paging defaults.
const (
	AddressCount       = 100
	DefaultMaxPageSize = 20
)

// TransfersQuery selects transfers touching a set of addresses within a height range.
type TransfersQuery struct {
	BlockchainID string
	Addresses    []string
	BegHeight    uint64
	EndHeight    uint64
	MaxPageSize  *uint64
}

// TransactionsQuery selects transactions touching a set of addresses.
type TransactionsQuery struct {
	BlockchainID     string
	Addresses        []string
	BegHeight        *uint64
	EndHeight        *uint64
	IncludeRaw       bool
	IncludeProof     bool
	IncludeTransfers bool
	MaxPageSize      *uint64
}

// PageSize returns the requested page size or the transfer-aware default.
func (q TransactionsQuery) PageSize() uint64 {
	if q.MaxPageSize != nil {
		return *q.MaxPageSize
	}
	if q.IncludeTransfers {
		return DefaultMaxPageSize
	}
	return 3 * DefaultMaxPageSize
}

// BlockOptions selects what a block lookup embeds.
type BlockOptions struct {
	IncludeRaw     bool
	IncludeTx      bool
	IncludeTxRaw   bool
	IncludeTxProof bool
}

// BlocksQuery selects blocks in a height range.
type BlocksQuery struct {
	BlockchainID string
	BegHeight    uint64
	EndHeight    uint64
	Options      BlockOptions
	MaxPageSize  *uint64
}
