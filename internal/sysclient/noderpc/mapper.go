package noderpc

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/utxo"
)

// Mapper reads bitcoind RPC results. Results that are not objects reach it wrapped under
// the "result" key.
type Mapper struct {
	sysclient.UnsupportedMapper

	info      utxo.ChainInfo
	converter utxo.Converter
	logger    *zap.Logger
}

var _ sysclient.Mapper = (*Mapper)(nil)

// NewMapper builds a mapper for the chain served by one node.
func NewMapper(info utxo.ChainInfo, params *chaincfg.Params, logger *zap.Logger) *Mapper {
	return &Mapper{
		info:      info,
		converter: utxo.Converter{BlockchainID: info.BlockchainID, Params: params},
		logger:    logger.Named("noderpc_mapper"),
	}
}

func (m *Mapper) Blockchain(_ context.Context, o jsonview.Object) (model.Blockchain, bool, error) {
	b, err := m.info.Blockchain(o)
	if err != nil {
		m.logger.Warn("record rejected", zap.String("entity", "blockchain"), zap.Error(err))
		return model.Blockchain{}, false, nil
	}
	return b, true, nil
}

func (m *Mapper) Transaction(_ context.Context, o jsonview.Object) (model.Transaction, bool, error) {
	tx, err := m.converter.Transaction(o)
	if err != nil {
		m.logger.Warn("record rejected", zap.String("entity", "transaction"), zap.Error(err))
		return model.Transaction{}, false, nil
	}
	return tx, true, nil
}

// TransactionHistory expands a getrawmempool txid list. Mempool entries have no height.
func (m *Mapper) TransactionHistory(_ context.Context, o jsonview.Object) ([]model.TransactionHistory, bool, error) {
	hashes, ok := o.Strings(resultKey)
	if !ok {
		m.logger.Warn("record rejected", zap.String("entity", "transaction_history"))
		return nil, false, nil
	}
	out := make([]model.TransactionHistory, 0, len(hashes))
	for _, h := range hashes {
		out = append(out, model.TransactionHistory{Hash: h})
	}
	return out, true, nil
}

// TransactionIdentifier reads the txid returned by sendrawtransaction.
func (m *Mapper) TransactionIdentifier(_ context.Context, o jsonview.Object) (model.TransactionIdentifier, bool, error) {
	txid, ok := o.String(resultKey)
	if !ok || txid == "" {
		m.logger.Warn("record rejected", zap.String("entity", "transaction_identifier"))
		return model.TransactionIdentifier{}, false, nil
	}
	return model.TransactionIdentifier{
		ID:           utxo.TransactionID(m.info.BlockchainID, txid),
		BlockchainID: m.info.BlockchainID,
		Hash:         &txid,
		Identifier:   txid,
	}, true, nil
}
