// Package blockset implements the system client for the indexed blockchain service.
package blockset

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/aggregate"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/dispatch"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/expect"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

const (
	hederaAccountsPath = "_experimental/hedera/accounts"

	hederaInitialDelay = 2 * time.Second
	hederaRetryPeriod  = 5 * time.Second
	hederaRetryBudget  = 4 * time.Minute
)

// Client talks to the indexed service.
type Client struct {
	dispatcher *dispatch.Dispatcher
	mapper     sysclient.Mapper
	poller     clock.Poller
	logger     *zap.Logger
}

var _ sysclient.Client = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHederaPoller replaces the account creation polling schedule.
func WithHederaPoller(p clock.Poller) Option {
	return func(c *Client) { c.poller = p }
}

// New builds a Client sending requests through dispatcher and reading them with mapper.
func New(dispatcher *dispatch.Dispatcher, mapper sysclient.Mapper, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		dispatcher: dispatcher,
		mapper:     mapper,
		poller:     clock.NewPoller(hederaInitialDelay, hederaRetryPeriod, hederaRetryBudget),
		logger:     logger.Named("blockset_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CancelAll aborts every in-flight request, including chunked and paged ones.
func (c *Client) CancelAll() {
	c.dispatcher.CancelAll()
}

func one[T any](ctx context.Context, d *dispatch.Dispatcher, id string, req dispatch.Request, fn expect.Transform[T]) (T, error) {
	page, err := d.Page(ctx, req, false, "")
	if err != nil {
		var zero T
		return zero, err
	}
	return expect.One(ctx, id, page.Items, fn)
}

func many[T any](ctx context.Context, d *dispatch.Dispatcher, req dispatch.Request, path string, fn expect.Transform[T]) ([]T, error) {
	page, err := d.Page(ctx, req, true, path)
	if err != nil {
		return nil, err
	}
	return expect.Many(ctx, page.Items, fn)
}

func all[T any](ctx context.Context, d *dispatch.Dispatcher, req dispatch.Request, path string, fn expect.Transform[T]) ([]T, error) {
	items, err := d.All(ctx, req, path)
	if err != nil {
		return nil, err
	}
	return expect.Many(ctx, items, fn)
}

func pages[T any](d *dispatch.Dispatcher, path string, fn expect.Transform[T]) aggregate.PageFunc[T] {
	return func(ctx context.Context, req dispatch.Request) ([]T, *url.URL, error) {
		page, err := d.Page(ctx, req, true, path)
		if err != nil {
			return nil, nil, err
		}
		items, err := expect.Many(ctx, page.Items, fn)
		if err != nil {
			return nil, nil, err
		}
		return items, page.Next, nil
	}
}

func boolString(b bool) string {
	return strconv.FormatBool(b)
}

func uintString(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// canonicalAddresses lower-cases addresses of Ethereum-family chains.
func canonicalAddresses(addresses []string, blockchainID string) []string {
	if !strings.HasPrefix(blockchainID, "ethereum-") {
		return addresses
	}
	out := make([]string, len(addresses))
	for i, a := range addresses {
		out[i] = strings.ToLower(a)
	}
	return out
}

func chunkedRequests(path string, base []dispatch.QueryItem, blockchainID string, addresses []string) []dispatch.Request {
	chunks := aggregate.Chunk(canonicalAddresses(addresses, blockchainID), sysclient.AddressCount)
	reqs := make([]dispatch.Request, 0, len(chunks))
	for _, chunk := range chunks {
		query := append([]dispatch.QueryItem(nil), base...)
		for _, a := range chunk {
			query = append(query, dispatch.QueryItem{Key: "address", Value: a})
		}
		reqs = append(reqs, dispatch.Get(path, query...))
	}
	return reqs
}

// Blockchains

func (c *Client) GetBlockchains(ctx context.Context, mainnet *bool) ([]model.Blockchain, error) {
	var query []dispatch.QueryItem
	if mainnet != nil {
		query = append(query, dispatch.QueryItem{Key: "testnet", Value: boolString(!*mainnet)})
	}
	query = append(query, dispatch.QueryItem{Key: "verified", Value: "true"})
	return many(ctx, c.dispatcher, dispatch.Get("blockchains", query...), "blockchains", c.mapper.Blockchain)
}

func (c *Client) GetBlockchain(ctx context.Context, id string) (model.Blockchain, error) {
	req := dispatch.Get("blockchains/"+url.PathEscape(id), dispatch.Query("verified", "true")...)
	return one(ctx, c.dispatcher, id, req, c.mapper.Blockchain)
}

// Currencies

func (c *Client) GetCurrencies(ctx context.Context, blockchainID *string, mainnet *bool) ([]model.Currency, error) {
	isMainnet := true
	if mainnet != nil {
		isMainnet = *mainnet
	}
	var query []dispatch.QueryItem
	if blockchainID != nil {
		query = append(query, dispatch.QueryItem{Key: "blockchain_id", Value: *blockchainID})
	}
	query = append(query, dispatch.Query("testnet", boolString(!isMainnet), "verified", "true")...)
	return all(ctx, c.dispatcher, dispatch.Get("currencies", query...), "currencies", c.mapper.Currency)
}

func (c *Client) GetCurrency(ctx context.Context, id string) (model.Currency, error) {
	return one(ctx, c.dispatcher, id, dispatch.Get("currencies/"+url.PathEscape(id)), c.mapper.Currency)
}

// Subscriptions

func (c *Client) GetSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	return all(ctx, c.dispatcher, dispatch.Get("subscriptions"), "subscriptions", c.mapper.Subscription)
}

func (c *Client) GetSubscription(ctx context.Context, id string) (model.Subscription, error) {
	return one(ctx, c.dispatcher, id, dispatch.Get("subscriptions/"+url.PathEscape(id)), c.mapper.Subscription)
}

// GetOrCreateSubscription returns the stored subscription, creating it when the lookup fails for any reason.
func (c *Client) GetOrCreateSubscription(ctx context.Context, subscription model.Subscription) (model.Subscription, error) {
	existing, err := c.GetSubscription(ctx, subscription.ID)
	if err == nil {
		return existing, nil
	}
	c.logger.Debug("subscription lookup failed, creating", zap.String("subscription_id", subscription.ID), zap.Error(err))
	return c.CreateSubscription(ctx, subscription)
}

func (c *Client) CreateSubscription(ctx context.Context, subscription model.Subscription) (model.Subscription, error) {
	req := dispatch.Request{Method: http.MethodPost, Path: "subscriptions", Body: encodeSubscription(subscription, false)}
	return one(ctx, c.dispatcher, "POST /subscriptions", req, c.mapper.Subscription)
}

func (c *Client) UpdateSubscription(ctx context.Context, subscription model.Subscription) (model.Subscription, error) {
	req := dispatch.Request{
		Method: http.MethodPut,
		Path:   "subscriptions/" + url.PathEscape(subscription.ID),
		Body:   encodeSubscription(subscription, true),
	}
	return one(ctx, c.dispatcher, subscription.ID, req, c.mapper.Subscription)
}

func (c *Client) DeleteSubscription(ctx context.Context, id string) error {
	req := dispatch.Request{
		Method:     http.MethodDelete,
		Path:       "subscriptions/" + url.PathEscape(id),
		Decoder:    dispatch.RawDecoder,
		AllowEmpty: true,
	}
	v, err := c.dispatcher.Do(ctx, req)
	if err != nil {
		return err
	}
	if v != nil {
		return model.NewMalformedError("unexpected data on delete", nil)
	}
	return nil
}

// Transfers

func (c *Client) GetTransfers(ctx context.Context, query sysclient.TransfersQuery) ([]model.Transfer, error) {
	pageSize := uint64(sysclient.DefaultMaxPageSize)
	if query.MaxPageSize != nil {
		pageSize = *query.MaxPageSize
	}
	base := dispatch.Query(
		"blockchain_id", query.BlockchainID,
		"start_height", uintString(query.BegHeight),
		"end_height", uintString(query.EndHeight),
		"max_page_size", uintString(pageSize),
	)
	reqs := chunkedRequests("transfers", base, query.BlockchainID, query.Addresses)
	return aggregate.Drain(ctx, reqs, pages(c.dispatcher, "transfers", c.mapper.Transfer))
}

func (c *Client) GetTransfer(ctx context.Context, id string) (model.Transfer, error) {
	return one(ctx, c.dispatcher, id, dispatch.Get("transfers/"+url.PathEscape(id)), c.mapper.Transfer)
}

// Transactions

func (c *Client) GetTransactionHistory(context.Context, string, string) ([]model.TransactionHistory, error) {
	return nil, model.NewUnsupportedError("get transaction history")
}

func (c *Client) GetTransactions(ctx context.Context, query sysclient.TransactionsQuery) ([]model.Transaction, error) {
	base := []dispatch.QueryItem{{Key: "blockchain_id", Value: query.BlockchainID}}
	if query.BegHeight != nil {
		base = append(base, dispatch.QueryItem{Key: "start_height", Value: uintString(*query.BegHeight)})
	}
	if query.EndHeight != nil {
		base = append(base, dispatch.QueryItem{Key: "end_height", Value: uintString(*query.EndHeight)})
	}
	base = append(base, dispatch.Query(
		"merge_currencies", "true",
		"include_proof", boolString(query.IncludeProof),
		"include_raw", boolString(query.IncludeRaw),
		"include_transfers", boolString(query.IncludeTransfers),
		"include_calls", "false",
		"max_page_size", uintString(query.PageSize()),
	)...)

	reqs := chunkedRequests("transactions", base, query.BlockchainID, query.Addresses)
	return aggregate.Drain(ctx, reqs, pages(c.dispatcher, "transactions", c.mapper.Transaction))
}

func (c *Client) GetTransaction(ctx context.Context, id string, includeRaw, includeProof bool) (model.Transaction, error) {
	req := dispatch.Get("transactions/"+url.PathEscape(id), dispatch.Query(
		"include_proof", boolString(includeProof),
		"include_raw", boolString(includeRaw),
		"merge_currencies", "true",
	)...)
	return one(ctx, c.dispatcher, id, req, c.mapper.Transaction)
}

type submitJSON struct {
	BlockchainID  string `json:"blockchain_id"`
	SubmitContext string `json:"submit_context"`
	Data          string `json:"data"`
}

func submitBody(blockchainID string, data []byte, identifier string, estimate bool) submitJSON {
	encoded := base64.StdEncoding.EncodeToString(data)
	if identifier == "" {
		prefix := encoded
		if len(prefix) > 20 {
			prefix = prefix[:20]
		}
		identifier = "Data:" + prefix
	}
	if estimate {
		identifier += " (FeeEstimate)"
	}
	return submitJSON{
		BlockchainID:  blockchainID,
		SubmitContext: "WalletKit:" + blockchainID + ":" + identifier,
		Data:          encoded,
	}
}

func (c *Client) CreateTransaction(ctx context.Context, blockchainID string, data []byte, identifier string) (model.TransactionIdentifier, error) {
	req := dispatch.Request{Method: http.MethodPost, Path: "transactions", Body: submitBody(blockchainID, data, identifier, false)}
	return one(ctx, c.dispatcher, "POST /transactions", req, c.mapper.TransactionIdentifier)
}

func (c *Client) EstimateTransactionFee(ctx context.Context, blockchainID string, data []byte) (model.TransactionFee, error) {
	req := dispatch.Request{
		Method: http.MethodPost,
		Path:   "transactions",
		Query:  dispatch.Query("estimate_fee", "true"),
		Body:   submitBody(blockchainID, data, "", true),
	}
	return one(ctx, c.dispatcher, "POST /transactions?estimate_fee", req, c.mapper.TransactionFee)
}

// Blocks

func blockQuery(opts sysclient.BlockOptions) []dispatch.QueryItem {
	return dispatch.Query(
		"include_raw", boolString(opts.IncludeRaw),
		"include_tx", boolString(opts.IncludeTx),
		"include_tx_raw", boolString(opts.IncludeTxRaw),
		"include_tx_proof", boolString(opts.IncludeTxProof),
		"merge_currencies", "true",
	)
}

func (c *Client) GetBlocks(ctx context.Context, query sysclient.BlocksQuery) ([]model.Block, error) {
	q := dispatch.Query(
		"blockchain_id", query.BlockchainID,
		"start_height", uintString(query.BegHeight),
		"end_height", uintString(query.EndHeight),
	)
	q = append(q, blockQuery(query.Options)...)
	if query.MaxPageSize != nil {
		q = append(q, dispatch.QueryItem{Key: "max_page_size", Value: uintString(*query.MaxPageSize)})
	}
	return aggregate.Drain(ctx, []dispatch.Request{dispatch.Get("blocks", q...)}, pages(c.dispatcher, "blocks", c.mapper.Block))
}

func (c *Client) GetBlock(ctx context.Context, id string, opts sysclient.BlockOptions) (model.Block, error) {
	return one(ctx, c.dispatcher, id, dispatch.Get("blocks/"+url.PathEscape(id), blockQuery(opts)...), c.mapper.Block)
}

// Addresses

func (c *Client) GetAddresses(ctx context.Context, blockchainID, publicKey string) ([]model.Address, error) {
	req := dispatch.Get("addresses", dispatch.Query("blockchain_id", blockchainID, "public_key", publicKey)...)
	return many(ctx, c.dispatcher, req, "addresses", c.mapper.Address)
}

func (c *Client) GetAddress(ctx context.Context, blockchainID, address string, timestamp *uint64) (model.Address, error) {
	query := dispatch.Query("blockchain_id", blockchainID)
	if timestamp != nil {
		query = append(query, dispatch.QueryItem{Key: "timestamp", Value: uintString(*timestamp)})
	}
	return one(ctx, c.dispatcher, address, dispatch.Get("addresses/"+url.PathEscape(address), query...), c.mapper.Address)
}

func (c *Client) CreateAddress(ctx context.Context, blockchainID string, data []byte) (model.Address, error) {
	req := dispatch.Request{
		Method: http.MethodPost,
		Path:   "addresses",
		Body: map[string]string{
			"blockchain_id": blockchainID,
			"data":          base64.StdEncoding.EncodeToString(data),
		},
	}
	return one(ctx, c.dispatcher, "POST /addresses", req, c.mapper.Address)
}

// Hedera accounts

func canonicalPublicKey(publicKey string) string {
	if strings.HasPrefix(publicKey, "0x") || strings.HasPrefix(publicKey, "0X") {
		return publicKey[2:]
	}
	return publicKey
}

func (c *Client) GetHederaAccount(ctx context.Context, blockchainID, publicKey string) ([]model.HederaAccount, error) {
	req := dispatch.Get(hederaAccountsPath, dispatch.Query("blockchain_id", blockchainID, "pub_key", canonicalPublicKey(publicKey))...)
	return many(ctx, c.dispatcher, req, "accounts", c.mapper.HederaAccount)
}

// CreateHederaAccount requests a new account and polls until the service reports it.
// An HTTP 422 means the account already exists and is fetched directly.
func (c *Client) CreateHederaAccount(ctx context.Context, blockchainID, publicKey string) ([]model.HederaAccount, error) {
	publicKey = canonicalPublicKey(publicKey)
	req := dispatch.Request{
		Method: http.MethodPost,
		Path:   hederaAccountsPath,
		Body:   map[string]string{"blockchain_id": blockchainID, "pub_key": publicKey},
	}

	v, err := c.dispatcher.Do(ctx, req)
	if err != nil {
		var e *model.Error
		if errors.As(err, &e) && e.Kind == model.KindBadResponse && e.Code == http.StatusUnprocessableEntity {
			return c.GetHederaAccount(ctx, blockchainID, publicKey)
		}
		return nil, err
	}

	page, err := dispatch.Extract(v, false, "")
	if err != nil {
		return nil, err
	}
	transactionID, ok := page.Items[0].String("transaction_id")
	if !ok {
		return nil, model.NewNoDataError("hedera account creation returned no transaction id")
	}
	logger := c.logger.With(zap.String("blockchain_id", blockchainID), zap.String("transaction_id", transactionID))
	logger.Debug("hedera account submitted")

	var accounts []model.HederaAccount
	err = c.poller.Run(ctx, func(ctx context.Context) bool {
		found, err := c.GetHederaAccount(ctx, blockchainID, publicKey)
		if err != nil {
			logger.Debug("hedera account not yet available", zap.Error(err))
			return false
		}
		accounts = found
		return len(found) > 0
	})
	if errors.Is(err, clock.ErrPollExhausted) {
		return nil, model.NewNoDataError("hedera account not created in time")
	}
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
