// Package utxo maps the verbose bitcoind transaction and chain info shapes shared by the
// node RPC and explorer backends.
package utxo

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/pkg/safe"
)

const mainChain = "main"

// BtcToSatoshis converts BTC amount to satoshis with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// NativeCurrency is the currency id of a chain's own coin.
func NativeCurrency(blockchainID string) string {
	return blockchainID + ":__native__"
}

// ChainInfo describes the chain a backend serves; the info object only carries its live state.
type ChainInfo struct {
	BlockchainID            string
	ConfirmationsUntilFinal uint32
}

// Blockchain maps a getblockchaininfo-shaped object (chain, blocks, bestblockhash).
func (c ChainInfo) Blockchain(o jsonview.Object) (model.Blockchain, error) {
	chain, ok := o.String("chain")
	if !ok {
		return model.Blockchain{}, fmt.Errorf("chain info: missing chain")
	}
	blocks, ok := o.Int64("blocks")
	if !ok {
		return model.Blockchain{}, fmt.Errorf("chain info: missing blocks")
	}
	best, ok := o.String("bestblockhash")
	if !ok {
		return model.Blockchain{}, fmt.Errorf("chain info: missing bestblockhash")
	}

	b := model.Blockchain{
		ID:                      c.BlockchainID,
		Name:                    chain,
		Network:                 chain,
		IsMainnet:               chain == mainChain,
		Currency:                NativeCurrency(c.BlockchainID),
		VerifiedBlockHash:       &best,
		FeeEstimates:            []model.BlockchainFee{},
		ConfirmationsUntilFinal: c.ConfirmationsUntilFinal,
	}
	if blocks >= 0 {
		h := uint64(blocks)
		b.BlockHeight = &h
	}
	return b, nil
}
