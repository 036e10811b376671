// Package script decodes output scripts: addresses and application-layer token payloads.
package script

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
)

// ChainParams resolves network parameters by name.
func ChainParams(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "test", "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// DecodeAddresses extracts the addresses paid by a hex encoded output script.
// Scripts without standard addresses yield an empty list.
func DecodeAddresses(scriptHex string, params *chaincfg.Params) ([]string, error) {
	if scriptHex == "" {
		return nil, nil
	}
	scriptBytes, err := hex.DecodeString(scriptHex)
	if err != nil {
		return nil, fmt.Errorf("decode script hex: %w", err)
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(scriptBytes, params)
	if err != nil {
		return nil, fmt.Errorf("extract script addresses: %w", err)
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}

// OutputAddresses returns the addresses of a verbose scriptPubKey object, preferring the
// reported address list, then the single address field, then decoding the script itself.
func OutputAddresses(scriptPubKey jsonview.Object, params *chaincfg.Params) ([]string, error) {
	if addrs, ok := scriptPubKey.Strings("addresses"); ok && len(addrs) > 0 {
		return addrs, nil
	}
	if addr, ok := scriptPubKey.String("address"); ok && addr != "" {
		return []string{addr}, nil
	}
	scriptHex, _ := scriptPubKey.String("hex")
	return DecodeAddresses(scriptHex, params)
}
