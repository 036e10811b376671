// Package explorer implements the system client for a WhatsOnChain-style block explorer.
package explorer

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/aggregate"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/dispatch"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/expect"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/pkg/workerpool"
)

const (
	mainnetBlockchainID = "whatsonchain-mainnet"

	defaultWorkers = 4
)

// Network maps a blockchain id onto the explorer network path segment.
func Network(blockchainID string) string {
	if blockchainID == mainnetBlockchainID {
		return "main"
	}
	return "test"
}

func pathPrefix(blockchainID string) string {
	return "v1/bsv/" + Network(blockchainID) + "/"
}

func txHash(blockchainID, id string) (string, error) {
	hash := strings.TrimPrefix(id, blockchainID+":")
	if _, err := chainhash.NewHashFromStr(hash); err != nil {
		return "", model.NewURLError(fmt.Errorf("transaction id %q: %w", id, err))
	}
	return hash, nil
}

type fetcher struct {
	dispatcher *dispatch.Dispatcher
	prefix     string
}

// NewFetcher builds the Fetcher a Mapper uses to follow up on transactions of blockchainID.
func NewFetcher(dispatcher *dispatch.Dispatcher, blockchainID string) Fetcher {
	return &fetcher{dispatcher: dispatcher, prefix: pathPrefix(blockchainID)}
}

func (f *fetcher) Transaction(ctx context.Context, hash string) (jsonview.Object, error) {
	page, err := f.dispatcher.Page(ctx, dispatch.Get(f.prefix+"tx/hash/"+url.PathEscape(hash)), false, "")
	if err != nil {
		return nil, err
	}
	return page.Items[0], nil
}

func (f *fetcher) RawTransaction(ctx context.Context, hash string) ([]byte, error) {
	req := dispatch.Get(f.prefix + "tx/" + url.PathEscape(hash) + "/hex")
	req.Decoder = dispatch.RawDecoder
	v, err := f.dispatcher.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	body, _ := v.([]byte)
	raw, err := hex.DecodeString(strings.Trim(strings.TrimSpace(string(body)), `"`))
	if err != nil {
		return nil, model.NewMalformedError("raw transaction "+hash, err)
	}
	return raw, nil
}

// Client talks to the explorer for one blockchain.
type Client struct {
	sysclient.UnsupportedClient

	dispatcher   *dispatch.Dispatcher
	mapper       sysclient.Mapper
	blockchainID string
	prefix       string
	workers      int
	logger       *zap.Logger
}

var _ sysclient.Client = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithWorkers bounds the concurrent transaction lookups of GetTransactions.
func WithWorkers(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New returns a client for the single blockchain served by the explorer behind dispatcher.
func New(dispatcher *dispatch.Dispatcher, mapper sysclient.Mapper, blockchainID string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		dispatcher:   dispatcher,
		mapper:       mapper,
		blockchainID: blockchainID,
		prefix:       pathPrefix(blockchainID),
		workers:      defaultWorkers,
		logger:       logger.Named("explorer_client").With(zap.String("blockchain_id", blockchainID)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CancelAll aborts every in-flight request.
func (c *Client) CancelAll() {
	c.dispatcher.CancelAll()
}

func (c *Client) servesBlockchain(id string) error {
	if id != c.blockchainID {
		return model.NewNotFoundError(id)
	}
	return nil
}

// wrapped fetches a response whose body is not an object and nests it under resultKey.
func (c *Client) wrapped(ctx context.Context, req dispatch.Request) (jsonview.Object, error) {
	v, err := c.dispatcher.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return jsonview.Object{resultKey: v}, nil
}

func (c *Client) GetBlockchains(ctx context.Context, mainnet *bool) ([]model.Blockchain, error) {
	b, err := c.GetBlockchain(ctx, c.blockchainID)
	if err != nil {
		return nil, err
	}
	if mainnet != nil && b.IsMainnet != *mainnet {
		return []model.Blockchain{}, nil
	}
	return []model.Blockchain{b}, nil
}

func (c *Client) GetBlockchain(ctx context.Context, id string) (model.Blockchain, error) {
	if err := c.servesBlockchain(id); err != nil {
		return model.Blockchain{}, err
	}
	page, err := c.dispatcher.Page(ctx, dispatch.Get(c.prefix+"chain/info"), false, "")
	if err != nil {
		return model.Blockchain{}, err
	}
	return expect.One(ctx, id, page.Items, c.mapper.Blockchain)
}

func (c *Client) historyRequest(address string) dispatch.Request {
	return dispatch.Get(c.prefix + "address/" + url.PathEscape(address) + "/history")
}

func (c *Client) history(ctx context.Context, req dispatch.Request) ([]model.TransactionHistory, *url.URL, error) {
	o, err := c.wrapped(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	rows, err := expect.One(ctx, req.Path, []jsonview.Object{o}, c.mapper.TransactionHistory)
	return rows, nil, err
}

func (c *Client) GetTransactionHistory(ctx context.Context, blockchainID, address string) ([]model.TransactionHistory, error) {
	if err := c.servesBlockchain(blockchainID); err != nil {
		return nil, err
	}
	rows, _, err := c.history(ctx, c.historyRequest(address))
	return rows, err
}

func inRange(h model.TransactionHistory, query sysclient.TransactionsQuery) bool {
	if h.Height == 0 {
		// unconfirmed
		return query.EndHeight == nil
	}
	if query.BegHeight != nil && h.Height < *query.BegHeight {
		return false
	}
	if query.EndHeight != nil && h.Height >= *query.EndHeight {
		return false
	}
	return true
}

// GetTransactions reads every address history, one request per address, then resolves
// each distinct transaction in the height range.
func (c *Client) GetTransactions(ctx context.Context, query sysclient.TransactionsQuery) ([]model.Transaction, error) {
	if err := c.servesBlockchain(query.BlockchainID); err != nil {
		return nil, err
	}

	reqs := make([]dispatch.Request, 0, len(query.Addresses))
	for _, a := range query.Addresses {
		reqs = append(reqs, c.historyRequest(a))
	}
	rows, err := aggregate.Drain(ctx, reqs, c.history)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rows))
	hashes := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.Hash]; dup || !inRange(row, query) {
			continue
		}
		seen[row.Hash] = struct{}{}
		hashes = append(hashes, row.Hash)
	}
	c.logger.Debug("resolving history", zap.Int("addresses", len(query.Addresses)), zap.Int("transactions", len(hashes)))

	return workerpool.Map(ctx, c.workers, hashes, func(ctx context.Context, hash string) (model.Transaction, error) {
		return c.GetTransaction(ctx, hash, query.IncludeRaw, query.IncludeProof)
	})
}

func (c *Client) GetTransaction(ctx context.Context, id string, includeRaw, _ bool) (model.Transaction, error) {
	hash, err := txHash(c.blockchainID, id)
	if err != nil {
		return model.Transaction{}, err
	}
	page, err := c.dispatcher.Page(ctx, dispatch.Get(c.prefix+"tx/hash/"+hash), false, "")
	if err != nil {
		return model.Transaction{}, err
	}
	tx, err := expect.One(ctx, id, page.Items, c.mapper.Transaction)
	if err != nil {
		return model.Transaction{}, err
	}
	if !includeRaw {
		tx.Raw = nil
	}
	return tx, nil
}

// CreateTransaction broadcasts the serialized transaction; the explorer answers with its txid.
func (c *Client) CreateTransaction(ctx context.Context, blockchainID string, data []byte, _ string) (model.TransactionIdentifier, error) {
	if err := c.servesBlockchain(blockchainID); err != nil {
		return model.TransactionIdentifier{}, err
	}
	o, err := c.wrapped(ctx, dispatch.Request{
		Method: http.MethodPost,
		Path:   c.prefix + "tx/raw",
		Body:   map[string]string{"txhex": hex.EncodeToString(data)},
	})
	if err != nil {
		return model.TransactionIdentifier{}, err
	}
	return expect.One(ctx, "tx/raw", []jsonview.Object{o}, c.mapper.TransactionIdentifier)
}
