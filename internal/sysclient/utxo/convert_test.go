package utxo

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

func object(t *testing.T, body string) jsonview.Object {
	t.Helper()
	v, err := jsonview.Parse([]byte(body))
	require.NoError(t, err)
	o, ok := jsonview.AsObject(v)
	require.True(t, ok)
	return o
}

func p2pkh(t *testing.T) (string, string) {
	t.Helper()
	addr, err := btcutil.NewAddressPubKeyHash(make([]byte, 20), &chaincfg.MainNetParams)
	require.NoError(t, err)
	pkScript, err := txscript.PayToAddrScript(addr)
	require.NoError(t, err)
	return hex.EncodeToString(pkScript), addr.EncodeAddress()
}

func sfpHex(t *testing.T, quantity uint64) string {
	t.Helper()
	state := make([]byte, 8)
	binary.LittleEndian.PutUint64(state, quantity)
	s, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_0).
		AddData([]byte("sfp@0.1")).
		AddOp(txscript.OP_DROP).
		AddOp(txscript.OP_RETURN).
		AddData(state).
		Script()
	require.NoError(t, err)
	return hex.EncodeToString(s)
}

func TestBtcToSatoshis(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		want    uint64
		wantErr bool
	}{
		{name: "one coin", value: 1, want: 100_000_000},
		{name: "rounding", value: 0.00000001, want: 1},
		{name: "zero", value: 0, want: 0},
		{name: "negative", value: -0.5, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BtcToSatoshis(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChainInfo_Blockchain(t *testing.T) {
	info := ChainInfo{BlockchainID: "bitcoin-mainnet", ConfirmationsUntilFinal: 6}

	b, err := info.Blockchain(object(t, `{"chain":"main","blocks":800000,"bestblockhash":"00ff","mediantime":1700000000}`))
	require.NoError(t, err)
	assert.Equal(t, "bitcoin-mainnet", b.ID)
	assert.True(t, b.IsMainnet)
	assert.Equal(t, "bitcoin-mainnet:__native__", b.Currency)
	require.NotNil(t, b.BlockHeight)
	assert.Equal(t, uint64(800000), *b.BlockHeight)
	assert.Equal(t, "00ff", *b.VerifiedBlockHash)
	assert.Empty(t, b.FeeEstimates)
	assert.Equal(t, uint32(6), b.ConfirmationsUntilFinal)

	b, err = info.Blockchain(object(t, `{"chain":"test","blocks":-1,"bestblockhash":"00"}`))
	require.NoError(t, err)
	assert.False(t, b.IsMainnet)
	assert.Nil(t, b.BlockHeight)

	_, err = info.Blockchain(object(t, `{"chain":"main","bestblockhash":"00"}`))
	require.Error(t, err)
}

func TestConverter_Transaction(t *testing.T) {
	scriptHex, address := p2pkh(t)
	conv := Converter{BlockchainID: "bitcoin-mainnet", Params: &chaincfg.MainNetParams}

	tests := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, tx model.Transaction)
	}{
		{
			name: "mempool transaction",
			body: fmt.Sprintf(`{"txid":"aa","hash":"bb","size":225,"version":2,"locktime":0,"hex":"0102",
				"vin":[{"txid":"cc","vout":1,"scriptSig":{"asm":"sig","hex":"47"},"sequence":4294967295}],
				"vout":[{"value":0.5,"n":0,"scriptPubKey":{"hex":%q}}]}`, scriptHex),
			check: func(t *testing.T, tx model.Transaction) {
				assert.Equal(t, "bitcoin-mainnet:aa", tx.ID)
				assert.Equal(t, "aa", tx.Identifier)
				assert.Equal(t, "bb", tx.Hash)
				assert.Equal(t, model.StatusSubmitted, tx.Status)
				assert.Equal(t, []byte{1, 2}, tx.Raw)
				assert.Nil(t, tx.Fee)
				assert.Nil(t, tx.Confirmations)
				require.Len(t, tx.Inputs, 1)
				assert.Equal(t, model.TransactionInput{TxHash: "cc", Vout: 1, Script: "47", Signature: "sig", Sequence: 4294967295}, tx.Inputs[0])
				require.Len(t, tx.Outputs, 1)
				assert.Equal(t, uint64(50_000_000), tx.Outputs[0].Amount)
				assert.Equal(t, []string{address}, tx.Outputs[0].Addresses)
				assert.Equal(t, model.TypePlain, tx.Type)
			},
		},
		{
			name: "confirmed with block placement",
			body: `{"txid":"aa","size":1,"version":1,"locktime":0,"blockhash":"bh","blockheight":10,"confirmations":3,"time":1600000000,
				"vin":[{"coinbase":"03ab","sequence":0}],
				"vout":[{"value":6.25,"scriptPubKey":{"hex":"","addresses":["x"]}}]}`,
			check: func(t *testing.T, tx model.Transaction) {
				assert.Equal(t, "aa", tx.Hash)
				assert.Equal(t, model.StatusConfirmed, tx.Status)
				assert.Equal(t, uint64(10), *tx.BlockHeight)
				assert.Equal(t, uint64(3), *tx.Confirmations)
				assert.Equal(t, int64(1600000000), tx.Timestamp.Unix())
				assert.Equal(t, "03ab", tx.Inputs[0].Script)
				assert.Empty(t, tx.Inputs[0].TxHash)
				assert.Equal(t, []string{"x"}, tx.Outputs[0].Addresses)
			},
		},
		{
			name: "sfp token output",
			body: fmt.Sprintf(`{"txid":"aa","size":1,"version":1,"locktime":0,"vin":[],
				"vout":[{"value":0,"scriptPubKey":{"hex":%q}},{"value":0.0001,"scriptPubKey":{"hex":%q}}]}`, sfpHex(t, 4200), scriptHex),
			check: func(t *testing.T, tx model.Transaction) {
				assert.Equal(t, model.TypeSFP, tx.Type)
				require.NotNil(t, tx.TokenAmount)
				assert.Equal(t, uint64(4200), *tx.TokenAmount)
			},
		},
		{
			name:    "negative output value",
			body:    `{"txid":"aa","size":1,"version":1,"locktime":0,"vin":[],"vout":[{"value":-1,"scriptPubKey":{"hex":""}}]}`,
			wantErr: true,
		},
		{
			name:    "input without sequence",
			body:    `{"txid":"aa","size":1,"version":1,"locktime":0,"vin":[{"txid":"cc","vout":0,"scriptSig":{}}],"vout":[]}`,
			wantErr: true,
		},
		{
			name:    "missing vout",
			body:    `{"txid":"aa","size":1,"version":1,"locktime":0,"vin":[]}`,
			wantErr: true,
		},
		{
			name:    "bad hex",
			body:    `{"txid":"aa","size":1,"version":1,"locktime":0,"hex":"zz","vin":[],"vout":[]}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := conv.Transaction(object(t, tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, tx)
		})
	}
}

func TestTouches(t *testing.T) {
	tx := model.Transaction{Outputs: []model.TransactionOutput{{Addresses: []string{"a"}}, {Addresses: []string{"b", "c"}}}}

	assert.True(t, Touches(tx, map[string]struct{}{"c": {}}))
	assert.False(t, Touches(tx, map[string]struct{}{"d": {}}))
	assert.False(t, Touches(model.Transaction{}, map[string]struct{}{"a": {}}))
}
