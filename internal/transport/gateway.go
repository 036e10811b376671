package transport

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

// Gateway serves the system client operations as a REST API.
type Gateway struct {
	backend   Backend
	marshaler runtime.Marshaler
	logger    *zap.Logger
}

// NewGateway returns a gateway serving backend.
func NewGateway(backend Backend, logger *zap.Logger) *Gateway {
	return &Gateway{
		backend:   backend,
		marshaler: &runtime.JSONBuiltin{},
		logger:    logger.Named("gateway"),
	}
}

// Register adds the gateway routes to mux.
func (g *Gateway) Register(mux *runtime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{http.MethodGet, "/v1/blockchains", g.listBlockchains},
		{http.MethodGet, "/v1/blockchains/{blockchain_id}", g.getBlockchain},
		{http.MethodGet, "/v1/blockchains/{blockchain_id}/history", g.getHistory},
		{http.MethodGet, "/v1/blockchains/{blockchain_id}/transactions", g.listTransactions},
		{http.MethodPost, "/v1/blockchains/{blockchain_id}/transactions", g.createTransaction},
		{http.MethodGet, "/v1/blockchains/{blockchain_id}/transactions/{hash}", g.getTransaction},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", r.method, r.pattern, err)
		}
	}
	return nil
}

func (g *Gateway) listBlockchains(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	mainnet, err := optionalBool(r, "mainnet")
	if err != nil {
		g.fail(w, r, err)
		return
	}
	chains, err := g.backend.GetBlockchains(r.Context(), mainnet)
	if err != nil {
		g.fail(w, r, err)
		return
	}
	out := make([]blockchainDTO, 0, len(chains))
	for _, b := range chains {
		out = append(out, newBlockchainDTO(b))
	}
	g.respond(w, http.StatusOK, out)
}

func (g *Gateway) getBlockchain(w http.ResponseWriter, r *http.Request, params map[string]string) {
	b, err := g.backend.GetBlockchain(r.Context(), params["blockchain_id"])
	if err != nil {
		g.fail(w, r, err)
		return
	}
	g.respond(w, http.StatusOK, newBlockchainDTO(b))
}

func (g *Gateway) getHistory(w http.ResponseWriter, r *http.Request, params map[string]string) {
	address := r.URL.Query().Get("address")
	if address == "" {
		g.fail(w, r, model.NewURLError(fmt.Errorf("address is required")))
		return
	}
	rows, err := g.backend.GetTransactionHistory(r.Context(), params["blockchain_id"], address)
	if err != nil {
		g.fail(w, r, err)
		return
	}
	out := make([]historyDTO, 0, len(rows))
	for _, h := range rows {
		out = append(out, historyDTO{Hash: h.Hash, Height: h.Height})
	}
	g.respond(w, http.StatusOK, out)
}

func (g *Gateway) listTransactions(w http.ResponseWriter, r *http.Request, params map[string]string) {
	q := r.URL.Query()
	query := sysclient.TransactionsQuery{
		BlockchainID:     params["blockchain_id"],
		Addresses:        q["address"],
		IncludeTransfers: true,
	}
	var err error
	if query.BegHeight, err = optionalUint(r, "beg_height"); err != nil {
		g.fail(w, r, err)
		return
	}
	if query.EndHeight, err = optionalUint(r, "end_height"); err != nil {
		g.fail(w, r, err)
		return
	}
	if query.IncludeRaw, err = flag(r, "include_raw"); err != nil {
		g.fail(w, r, err)
		return
	}

	txs, err := g.backend.GetTransactions(r.Context(), query)
	if err != nil {
		g.fail(w, r, err)
		return
	}
	out := make([]transactionDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, newTransactionDTO(tx))
	}
	g.respond(w, http.StatusOK, out)
}

func (g *Gateway) getTransaction(w http.ResponseWriter, r *http.Request, params map[string]string) {
	includeRaw, err := flag(r, "include_raw")
	if err != nil {
		g.fail(w, r, err)
		return
	}
	id := params["blockchain_id"] + ":" + params["hash"]
	tx, err := g.backend.GetTransaction(r.Context(), id, includeRaw, false)
	if err != nil {
		g.fail(w, r, err)
		return
	}
	g.respond(w, http.StatusOK, newTransactionDTO(tx))
}

func (g *Gateway) createTransaction(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var req createTransactionRequest
	if err := g.marshaler.NewDecoder(r.Body).Decode(&req); err != nil {
		g.fail(w, r, model.NewURLError(fmt.Errorf("decode body: %w", err)))
		return
	}
	data, err := hex.DecodeString(req.Data)
	if err != nil || len(data) == 0 {
		g.fail(w, r, model.NewURLError(fmt.Errorf("data must be non-empty hex")))
		return
	}

	id, err := g.backend.CreateTransaction(r.Context(), params["blockchain_id"], data, req.Identifier)
	if err != nil {
		g.fail(w, r, err)
		return
	}
	g.respond(w, http.StatusCreated, identifierDTO{
		ID:           id.ID,
		BlockchainID: id.BlockchainID,
		Hash:         id.Hash,
		Identifier:   id.Identifier,
	})
}

func (g *Gateway) respond(w http.ResponseWriter, code int, v any) {
	body, err := g.marshaler.Marshal(v)
	if err != nil {
		g.logger.Error("marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", g.marshaler.ContentType(v))
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		g.logger.Debug("write response", zap.Error(err))
	}
}

func (g *Gateway) fail(w http.ResponseWriter, r *http.Request, err error) {
	code, body := httpStatus(err)
	if code >= http.StatusInternalServerError {
		g.logger.Warn("request failed", zap.String("path", r.URL.Path), zap.Int("code", code), zap.Error(err))
	}
	g.respond(w, code, body)
}

func optionalBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, model.NewURLError(fmt.Errorf("%s: %w", name, err))
	}
	return &v, nil
}

func flag(r *http.Request, name string) (bool, error) {
	v, err := optionalBool(r, name)
	if err != nil || v == nil {
		return false, err
	}
	return *v, nil
}

func optionalUint(r *http.Request, name string) (*uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, model.NewURLError(fmt.Errorf("%s: %w", name, err))
	}
	return &v, nil
}
