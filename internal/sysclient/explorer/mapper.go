package explorer

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/script"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/utxo"
)

const (
	resultKey = "result"

	// fromOutput is the output a plain send pays its change to.
	fromOutput = 1
	// runPayloadPart is the OP_RETURN part holding a run token payload.
	runPayloadPart = 2
)

// Mapper reads explorer responses. Transaction mapping resolves the raw bytes and the
// sender address through the Fetcher, one lookup after the other.
type Mapper struct {
	sysclient.UnsupportedMapper

	info      utxo.ChainInfo
	converter utxo.Converter
	fetcher   Fetcher
	logger    *zap.Logger
}

var _ sysclient.Mapper = (*Mapper)(nil)

// NewMapper returns a mapper for explorer payloads; fetcher supplies raw bytes and the outputs a transaction spends.
func NewMapper(info utxo.ChainInfo, params *chaincfg.Params, fetcher Fetcher, logger *zap.Logger) *Mapper {
	return &Mapper{
		info:      info,
		converter: utxo.Converter{BlockchainID: info.BlockchainID, Params: params},
		fetcher:   fetcher,
		logger:    logger.Named("explorer_mapper"),
	}
}

func (m *Mapper) reject(entity string, err error) {
	m.logger.Warn("record rejected", zap.String("entity", entity), zap.Error(err))
}

func (m *Mapper) Blockchain(_ context.Context, o jsonview.Object) (model.Blockchain, bool, error) {
	b, err := m.info.Blockchain(o)
	if err != nil {
		m.reject("blockchain", err)
		return model.Blockchain{}, false, nil
	}
	return b, true, nil
}

func historyRow(o jsonview.Object) (model.TransactionHistory, bool) {
	hash, ok := o.String("tx_hash")
	if !ok {
		return model.TransactionHistory{}, false
	}
	height, ok := o.Int64("height")
	if !ok {
		return model.TransactionHistory{}, false
	}
	if height < 0 {
		height = 0
	}
	return model.TransactionHistory{Hash: hash, Height: uint64(height)}, true
}

// TransactionHistory expands an address history listing into its rows.
func (m *Mapper) TransactionHistory(_ context.Context, o jsonview.Object) ([]model.TransactionHistory, bool, error) {
	rows, ok := jsonview.MapObjects(o, resultKey, historyRow)
	if !ok {
		m.reject("transaction_history", nil)
		return nil, false, nil
	}
	return rows, true, nil
}

// TransactionIdentifier reads the txid a broadcast returns.
func (m *Mapper) TransactionIdentifier(_ context.Context, o jsonview.Object) (model.TransactionIdentifier, bool, error) {
	txid, ok := o.String(resultKey)
	if !ok || txid == "" {
		m.reject("transaction_identifier", nil)
		return model.TransactionIdentifier{}, false, nil
	}
	return model.TransactionIdentifier{
		ID:           utxo.TransactionID(m.info.BlockchainID, txid),
		BlockchainID: m.info.BlockchainID,
		Hash:         &txid,
		Identifier:   txid,
	}, true, nil
}

func (m *Mapper) Transaction(ctx context.Context, o jsonview.Object) (model.Transaction, bool, error) {
	tx, err := m.converter.Transaction(o)
	if err != nil {
		m.reject("transaction", err)
		return model.Transaction{}, false, nil
	}
	vout, _ := o.Objects("vout")

	if from, ok := fromAddress(vout); ok {
		tx.FromAddress = &from
	}
	for _, out := range vout {
		if run, ok := runTransfer(out); ok {
			amount := run.Amount
			mintID := run.MintID
			tx.Type = model.TypeRun
			tx.MintID = &mintID
			tx.TokenAmount = &amount
		}
	}

	if len(tx.Raw) == 0 {
		raw, err := m.fetcher.RawTransaction(ctx, tx.Identifier)
		if err != nil {
			return model.Transaction{}, false, err
		}
		tx.Raw = raw
	}

	sender, err := m.senderAddress(ctx, tx)
	if err != nil {
		return model.Transaction{}, false, err
	}
	tx.SenderAddress = sender
	return tx, true, nil
}

// fromAddress is the first address of the change output, unless that output carries data.
func fromAddress(vout []jsonview.Object) (string, bool) {
	if len(vout) <= fromOutput {
		return "", false
	}
	scriptPubKey, ok := vout[fromOutput].Object("scriptPubKey")
	if !ok || scriptPubKey.Has("opReturn") {
		return "", false
	}
	addresses, ok := scriptPubKey.Strings("addresses")
	if !ok || len(addresses) == 0 {
		return "", false
	}
	return addresses[0], true
}

func runTransfer(out jsonview.Object) (script.RunTransfer, bool) {
	scriptPubKey, ok := out.Object("scriptPubKey")
	if !ok {
		return script.RunTransfer{}, false
	}
	opReturn, ok := scriptPubKey.Object("opReturn")
	if !ok {
		return script.RunTransfer{}, false
	}
	parts, ok := opReturn.Strings("parts")
	if !ok || len(parts) <= runPayloadPart {
		return script.RunTransfer{}, false
	}
	return script.ParseRunPayload(parts[runPayloadPart])
}

// senderAddress resolves the address owning the output spent by the first input.
func (m *Mapper) senderAddress(ctx context.Context, tx model.Transaction) (*string, error) {
	if len(tx.Inputs) == 0 || tx.Inputs[0].TxHash == "" {
		return nil, nil
	}
	input := tx.Inputs[0]

	source, err := m.fetcher.Transaction(ctx, input.TxHash)
	if err != nil {
		return nil, err
	}
	vout, ok := source.Objects("vout")
	if !ok || int(input.Vout) >= len(vout) {
		return nil, model.NewMalformedError("source transaction "+input.TxHash+" has no spent output", nil)
	}
	scriptPubKey, ok := vout[input.Vout].Object("scriptPubKey")
	if !ok {
		return nil, model.NewMalformedError("source transaction "+input.TxHash+" output without scriptPubKey", nil)
	}
	addresses, err := script.OutputAddresses(scriptPubKey, m.converter.Params)
	if err != nil {
		return nil, model.NewMalformedError("source transaction "+input.TxHash+" output addresses", err)
	}
	if len(addresses) == 0 {
		return nil, nil
	}
	return &addresses[0], nil
}
