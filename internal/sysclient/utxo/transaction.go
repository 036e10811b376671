package utxo

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/script"
)

// TransactionID is the canonical record id of a chain transaction.
func TransactionID(blockchainID, txid string) string {
	return blockchainID + ":" + txid
}

// Converter turns verbose transaction objects into model transactions for one chain.
type Converter struct {
	BlockchainID string
	Params       *chaincfg.Params
}

// Transaction maps the verbose fields every backend reports. Block placement fields are
// optional; a transaction counts as confirmed once it has a block height or confirmations.
func (c Converter) Transaction(o jsonview.Object) (model.Transaction, error) {
	txid, ok := o.String("txid")
	if !ok {
		return model.Transaction{}, fmt.Errorf("missing txid")
	}
	hash, ok := o.String("hash")
	if !ok {
		hash = txid
	}
	size, ok := o.Uint64("size")
	if !ok {
		return model.Transaction{}, fmt.Errorf("tx %s: missing size", txid)
	}
	version, ok := o.Int64("version")
	if !ok {
		return model.Transaction{}, fmt.Errorf("tx %s: missing version", txid)
	}
	lockTime, ok := o.Int64("locktime")
	if !ok {
		return model.Transaction{}, fmt.Errorf("tx %s: missing locktime", txid)
	}
	vin, ok := o.Objects("vin")
	if !ok {
		return model.Transaction{}, fmt.Errorf("tx %s: missing vin", txid)
	}
	vout, ok := o.Objects("vout")
	if !ok {
		return model.Transaction{}, fmt.Errorf("tx %s: missing vout", txid)
	}

	inputs, err := Inputs(txid, vin)
	if err != nil {
		return model.Transaction{}, err
	}
	outputs, err := c.Outputs(txid, vout)
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		ID:           TransactionID(c.BlockchainID, txid),
		BlockchainID: c.BlockchainID,
		Hash:         hash,
		Identifier:   txid,
		Status:       model.StatusSubmitted,
		Size:         size,
		Transfers:    []model.Transfer{},
		Version:      &version,
		LockTime:     &lockTime,
		Inputs:       inputs,
		Outputs:      outputs,
	}

	if blockHash, ok := o.String("blockhash"); ok && blockHash != "" {
		tx.BlockHash = &blockHash
	}
	if height, ok := o.Int64("blockheight"); ok && height >= 0 {
		h := uint64(height)
		tx.BlockHeight = &h
	}
	if confirmations, ok := o.Uint64("confirmations"); ok && confirmations > 0 {
		tx.Confirmations = &confirmations
		tx.Acknowledgements = confirmations
	}
	if tx.BlockHeight != nil || tx.Confirmations != nil {
		tx.Status = model.StatusConfirmed
	}
	if ts, ok := o.Int64("time"); ok && ts > 0 {
		t := time.Unix(ts, 0).UTC()
		tx.Timestamp = &t
	}
	if rawHex, ok := o.String("hex"); ok && rawHex != "" {
		raw, err := hex.DecodeString(rawHex)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s: decode hex: %w", txid, err)
		}
		tx.Raw = raw
	}

	for _, out := range outputs {
		if token, ok := sfpToken(out.Script); ok {
			amount := token.Amount
			tx.Type = model.TypeSFP
			tx.TokenAmount = &amount
		}
	}
	return tx, nil
}

func sfpToken(scriptHex string) (script.SFPToken, bool) {
	pkScript, err := hex.DecodeString(scriptHex)
	if err != nil {
		return script.SFPToken{}, false
	}
	return script.ParseSFP(pkScript)
}

// Inputs maps vin entries. Coinbase inputs carry their coinbase data as script.
func Inputs(txid string, vin []jsonview.Object) ([]model.TransactionInput, error) {
	inputs := make([]model.TransactionInput, 0, len(vin))
	for idx, in := range vin {
		sequence, ok := in.Int64("sequence")
		if !ok {
			return nil, fmt.Errorf("tx %s input %d: missing sequence", txid, idx)
		}
		if coinbase, ok := in.String("coinbase"); ok {
			inputs = append(inputs, model.TransactionInput{Script: coinbase, Sequence: sequence})
			continue
		}

		prev, ok := in.String("txid")
		if !ok {
			return nil, fmt.Errorf("tx %s input %d: missing txid", txid, idx)
		}
		n, ok := in.Uint32("vout")
		if !ok {
			return nil, fmt.Errorf("tx %s input %d: missing vout", txid, idx)
		}
		scriptSig, ok := in.Object("scriptSig")
		if !ok {
			return nil, fmt.Errorf("tx %s input %d: missing scriptSig", txid, idx)
		}
		scriptHex, _ := scriptSig.String("hex")
		asm, _ := scriptSig.String("asm")
		inputs = append(inputs, model.TransactionInput{
			TxHash:    prev,
			Vout:      n,
			Script:    scriptHex,
			Signature: asm,
			Sequence:  sequence,
		})
	}
	return inputs, nil
}

// Outputs maps vout entries, converting BTC values to satoshis.
func (c Converter) Outputs(txid string, vout []jsonview.Object) ([]model.TransactionOutput, error) {
	outputs := make([]model.TransactionOutput, 0, len(vout))
	for idx, out := range vout {
		value, ok := out.Float64("value")
		if !ok {
			return nil, fmt.Errorf("tx %s output %d: missing value", txid, idx)
		}
		if value < 0 {
			return nil, fmt.Errorf("tx %s output %d negative value: %f", txid, idx, value)
		}
		satoshis, err := BtcToSatoshis(value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d safe value: %w", txid, idx, err)
		}
		scriptPubKey, ok := out.Object("scriptPubKey")
		if !ok {
			return nil, fmt.Errorf("tx %s output %d: missing scriptPubKey", txid, idx)
		}
		scriptHex, _ := scriptPubKey.String("hex")
		addresses, err := script.OutputAddresses(scriptPubKey, c.Params)
		if err != nil {
			return nil, fmt.Errorf("decode addresses for tx %s output %d: %w", txid, idx, err)
		}
		if addresses == nil {
			addresses = []string{}
		}
		outputs = append(outputs, model.TransactionOutput{
			Script:    scriptHex,
			Amount:    satoshis,
			Addresses: addresses,
		})
	}
	return outputs, nil
}

// Touches reports whether any output pays one of addresses.
func Touches(tx model.Transaction, addresses map[string]struct{}) bool {
	for _, out := range tx.Outputs {
		for _, a := range out.Addresses {
			if _, ok := addresses[a]; ok {
				return true
			}
		}
	}
	return false
}
