// Package noderpc implements the system client for a bitcoind JSON-RPC endpoint.
package noderpc

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/dispatch"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/expect"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/utxo"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/pkg/workerpool"
)

const (
	resultKey = "result"

	defaultWorkers = 8
)

// Client talks to one node serving one blockchain.
type Client struct {
	sysclient.UnsupportedClient

	dispatcher   *dispatch.Dispatcher
	mapper       sysclient.Mapper
	blockchainID string
	workers      int
	logger       *zap.Logger

	nextID atomic.Uint64
}

var _ sysclient.Client = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithWorkers bounds the concurrent getrawtransaction calls of GetTransactions.
func WithWorkers(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New builds a Client posting JSON-RPC requests through dispatcher.
func New(dispatcher *dispatch.Dispatcher, mapper sysclient.Mapper, blockchainID string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		dispatcher:   dispatcher,
		mapper:       mapper,
		blockchainID: blockchainID,
		workers:      defaultWorkers,
		logger:       logger.Named("noderpc_client").With(zap.String("blockchain_id", blockchainID)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CancelAll aborts every in-flight RPC call.
func (c *Client) CancelAll() {
	c.dispatcher.CancelAll()
}

func decodeResponse(body []byte) (any, error) {
	var resp btcjson.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func rpcError(code int, message string) *model.Error {
	err := model.NewBadResponseError(code, map[string]any{"code": code, "message": message}, false)
	err.Message = message
	return err
}

// rpcFailure surfaces the RPC error object bitcoind sends along with an HTTP error status.
func rpcFailure(err error) error {
	var e *model.Error
	if !errors.As(err, &e) || e.Kind != model.KindBadResponse || e.JSON == nil {
		return err
	}
	inner, ok := jsonview.Object(e.JSON).Object("error")
	if !ok {
		return err
	}
	code, okCode := inner.Int64("code")
	message, _ := inner.String("message")
	if !okCode {
		return err
	}
	return rpcError(int(code), message)
}

func isRPCCode(err error, code btcjson.RPCErrorCode) bool {
	var e *model.Error
	return errors.As(err, &e) && e.Kind == model.KindBadResponse && e.Code == int(code)
}

// call runs one JSON-RPC method. Non-object results are wrapped under resultKey.
func (c *Client) call(ctx context.Context, method string, params ...any) (jsonview.Object, error) {
	req, err := btcjson.NewRequest(btcjson.RpcVersion1, c.nextID.Add(1), method, params)
	if err != nil {
		return nil, model.NewURLError(fmt.Errorf("%s: %w", method, err))
	}

	v, err := c.dispatcher.Do(ctx, dispatch.Request{
		Method:  http.MethodPost,
		Body:    req,
		Decoder: decodeResponse,
	})
	if err != nil {
		return nil, rpcFailure(err)
	}

	resp, ok := v.(*btcjson.Response)
	if !ok {
		return nil, model.NewMalformedError(method+": unexpected response", nil)
	}
	if resp.Error != nil {
		return nil, rpcError(int(resp.Error.Code), resp.Error.Message)
	}
	if len(resp.Result) == 0 || string(resp.Result) == "null" {
		return nil, model.NewNoDataError(method)
	}

	result, err := jsonview.Parse(resp.Result)
	if err != nil {
		return nil, model.NewMalformedError(method+": decode result", err)
	}
	if o, ok := jsonview.AsObject(result); ok {
		return o, nil
	}
	return jsonview.Object{resultKey: result}, nil
}

func (c *Client) servesBlockchain(id string) error {
	if id != c.blockchainID {
		return model.NewNotFoundError(id)
	}
	return nil
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
	o, err := c.call(ctx, "getblockchaininfo")
	if err != nil {
		return model.Blockchain{}, err
	}
	return expect.One(ctx, id, []jsonview.Object{o}, c.mapper.Blockchain)
}

// GetTransactionHistory lists the mempool. The node keeps no address index, so the
// history is the same for every address.
func (c *Client) GetTransactionHistory(ctx context.Context, blockchainID, address string) ([]model.TransactionHistory, error) {
	if err := c.servesBlockchain(blockchainID); err != nil {
		return nil, err
	}
	o, err := c.call(ctx, "getrawmempool")
	if err != nil {
		return nil, err
	}
	return expect.One(ctx, address, []jsonview.Object{o}, c.mapper.TransactionHistory)
}

// GetTransactions hydrates the mempool and keeps transactions paying one of the addresses.
// Transactions leaving the mempool between the listing and the lookup are skipped.
func (c *Client) GetTransactions(ctx context.Context, query sysclient.TransactionsQuery) ([]model.Transaction, error) {
	if err := c.servesBlockchain(query.BlockchainID); err != nil {
		return nil, err
	}
	if len(query.Addresses) == 0 {
		return []model.Transaction{}, nil
	}

	history, err := c.GetTransactionHistory(ctx, query.BlockchainID, query.Addresses[0])
	if err != nil {
		return nil, err
	}

	found, err := workerpool.Map(ctx, c.workers, history, func(ctx context.Context, h model.TransactionHistory) (*model.Transaction, error) {
		tx, err := c.GetTransaction(ctx, h.Hash, query.IncludeRaw, query.IncludeProof)
		if isRPCCode(err, btcjson.ErrRPCNoTxInfo) {
			c.logger.Debug("transaction left mempool", zap.String("hash", h.Hash))
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &tx, nil
	})
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(query.Addresses))
	for _, a := range query.Addresses {
		wanted[a] = struct{}{}
	}
	txs := make([]model.Transaction, 0, len(found))
	for _, tx := range found {
		if tx != nil && utxo.Touches(*tx, wanted) {
			txs = append(txs, *tx)
		}
	}
	return txs, nil
}

func (c *Client) txHash(id string) (string, error) {
	hash := strings.TrimPrefix(id, c.blockchainID+":")
	if _, err := chainhash.NewHashFromStr(hash); err != nil {
		return "", model.NewURLError(fmt.Errorf("transaction id %q: %w", id, err))
	}
	return hash, nil
}

// GetTransaction accepts a bare txid or a "<blockchain id>:<txid>" record id.
func (c *Client) GetTransaction(ctx context.Context, id string, includeRaw, _ bool) (model.Transaction, error) {
	hash, err := c.txHash(id)
	if err != nil {
		return model.Transaction{}, err
	}
	o, err := c.call(ctx, "getrawtransaction", hash, 1)
	if err != nil {
		return model.Transaction{}, err
	}
	tx, err := expect.One(ctx, id, []jsonview.Object{o}, c.mapper.Transaction)
	if err != nil {
		return model.Transaction{}, err
	}
	if !includeRaw {
		tx.Raw = nil
	}
	return tx, nil
}

func (c *Client) CreateTransaction(ctx context.Context, blockchainID string, data []byte, _ string) (model.TransactionIdentifier, error) {
	if err := c.servesBlockchain(blockchainID); err != nil {
		return model.TransactionIdentifier{}, err
	}
	o, err := c.call(ctx, "sendrawtransaction", hex.EncodeToString(data))
	if err != nil {
		return model.TransactionIdentifier{}, err
	}
	return expect.One(ctx, "sendrawtransaction", []jsonview.Object{o}, c.mapper.TransactionIdentifier)
}
