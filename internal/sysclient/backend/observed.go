package backend

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

// ObservedClient records the outcome and duration of every operation of the wrapped client.
type ObservedClient struct {
	client  sysclient.Client
	metrics ClientMetrics
}

var _ sysclient.Client = (*ObservedClient)(nil)

// NewObservedClient wraps client so each call is reported to metrics.
func NewObservedClient(client sysclient.Client, metrics ClientMetrics) *ObservedClient {
	return &ObservedClient{
		client:  client,
		metrics: metrics,
	}
}

func (c *ObservedClient) CancelAll() {
	c.client.CancelAll()
}

func (c *ObservedClient) GetBlockchains(ctx context.Context, mainnet *bool) (res []model.Blockchain, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_blockchains", err, started)
	}()
	return c.client.GetBlockchains(ctx, mainnet)
}

func (c *ObservedClient) GetBlockchain(ctx context.Context, id string) (res model.Blockchain, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_blockchain", err, started)
	}()
	return c.client.GetBlockchain(ctx, id)
}

func (c *ObservedClient) GetCurrencies(ctx context.Context, blockchainID *string, mainnet *bool) (res []model.Currency, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_currencies", err, started)
	}()
	return c.client.GetCurrencies(ctx, blockchainID, mainnet)
}

func (c *ObservedClient) GetCurrency(ctx context.Context, id string) (res model.Currency, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_currency", err, started)
	}()
	return c.client.GetCurrency(ctx, id)
}

func (c *ObservedClient) GetSubscriptions(ctx context.Context) (res []model.Subscription, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_subscriptions", err, started)
	}()
	return c.client.GetSubscriptions(ctx)
}

func (c *ObservedClient) GetSubscription(ctx context.Context, id string) (res model.Subscription, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_subscription", err, started)
	}()
	return c.client.GetSubscription(ctx, id)
}

func (c *ObservedClient) GetOrCreateSubscription(ctx context.Context, subscription model.Subscription) (res model.Subscription, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_or_create_subscription", err, started)
	}()
	return c.client.GetOrCreateSubscription(ctx, subscription)
}

func (c *ObservedClient) CreateSubscription(ctx context.Context, subscription model.Subscription) (res model.Subscription, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("create_subscription", err, started)
	}()
	return c.client.CreateSubscription(ctx, subscription)
}

func (c *ObservedClient) UpdateSubscription(ctx context.Context, subscription model.Subscription) (res model.Subscription, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("update_subscription", err, started)
	}()
	return c.client.UpdateSubscription(ctx, subscription)
}

func (c *ObservedClient) DeleteSubscription(ctx context.Context, id string) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("delete_subscription", err, started)
	}()
	return c.client.DeleteSubscription(ctx, id)
}

func (c *ObservedClient) GetTransfers(ctx context.Context, query sysclient.TransfersQuery) (res []model.Transfer, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transfers", err, started)
	}()
	return c.client.GetTransfers(ctx, query)
}

func (c *ObservedClient) GetTransfer(ctx context.Context, id string) (res model.Transfer, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transfer", err, started)
	}()
	return c.client.GetTransfer(ctx, id)
}

func (c *ObservedClient) GetTransactionHistory(ctx context.Context, blockchainID, address string) (res []model.TransactionHistory, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transaction_history", err, started)
	}()
	return c.client.GetTransactionHistory(ctx, blockchainID, address)
}

func (c *ObservedClient) GetTransactions(ctx context.Context, query sysclient.TransactionsQuery) (res []model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transactions", err, started)
	}()
	return c.client.GetTransactions(ctx, query)
}

func (c *ObservedClient) GetTransaction(ctx context.Context, id string, includeRaw, includeProof bool) (res model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transaction", err, started)
	}()
	return c.client.GetTransaction(ctx, id, includeRaw, includeProof)
}

func (c *ObservedClient) CreateTransaction(ctx context.Context, blockchainID string, data []byte, identifier string) (res model.TransactionIdentifier, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("create_transaction", err, started)
	}()
	return c.client.CreateTransaction(ctx, blockchainID, data, identifier)
}

func (c *ObservedClient) EstimateTransactionFee(ctx context.Context, blockchainID string, data []byte) (res model.TransactionFee, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("estimate_transaction_fee", err, started)
	}()
	return c.client.EstimateTransactionFee(ctx, blockchainID, data)
}

func (c *ObservedClient) GetBlocks(ctx context.Context, query sysclient.BlocksQuery) (res []model.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_blocks", err, started)
	}()
	return c.client.GetBlocks(ctx, query)
}

func (c *ObservedClient) GetBlock(ctx context.Context, id string, opts sysclient.BlockOptions) (res model.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block", err, started)
	}()
	return c.client.GetBlock(ctx, id, opts)
}

func (c *ObservedClient) GetAddresses(ctx context.Context, blockchainID, publicKey string) (res []model.Address, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_addresses", err, started)
	}()
	return c.client.GetAddresses(ctx, blockchainID, publicKey)
}

func (c *ObservedClient) GetAddress(ctx context.Context, blockchainID, address string, timestamp *uint64) (res model.Address, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_address", err, started)
	}()
	return c.client.GetAddress(ctx, blockchainID, address, timestamp)
}

func (c *ObservedClient) CreateAddress(ctx context.Context, blockchainID string, data []byte) (res model.Address, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("create_address", err, started)
	}()
	return c.client.CreateAddress(ctx, blockchainID, data)
}

func (c *ObservedClient) GetHederaAccount(ctx context.Context, blockchainID, publicKey string) (res []model.HederaAccount, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_hedera_account", err, started)
	}()
	return c.client.GetHederaAccount(ctx, blockchainID, publicKey)
}

func (c *ObservedClient) CreateHederaAccount(ctx context.Context, blockchainID, publicKey string) (res []model.HederaAccount, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("create_hedera_account", err, started)
	}()
	return c.client.CreateHederaAccount(ctx, blockchainID, publicKey)
}
