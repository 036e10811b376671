package archive

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Watch is one blockchain and the addresses archived for it.
type Watch struct {
	BlockchainID string   `yaml:"id"`
	Addresses    []string `yaml:"addresses"`
}

type watchList struct {
	Blockchains []Watch `yaml:"blockchains"`
}

// LoadWatchList reads a YAML watch list:
//
//	blockchains:
//	  - id: bitcoin-mainnet
//	    addresses: [1BoatSLRHtKNngkdXEeobR76b53LETtpyT]
func LoadWatchList(path string) ([]Watch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read watch list: %w", err)
	}
	return ParseWatchList(data)
}

func ParseWatchList(data []byte) ([]Watch, error) {
	var list watchList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode watch list: %w", err)
	}
	if len(list.Blockchains) == 0 {
		return nil, errors.New("watch list has no blockchains")
	}

	seen := make(map[string]struct{}, len(list.Blockchains))
	for i, w := range list.Blockchains {
		if w.BlockchainID == "" {
			return nil, fmt.Errorf("watch list entry %d: missing id", i)
		}
		if _, dup := seen[w.BlockchainID]; dup {
			return nil, fmt.Errorf("watch list entry %d: duplicate blockchain %s", i, w.BlockchainID)
		}
		seen[w.BlockchainID] = struct{}{}
		if len(w.Addresses) == 0 {
			return nil, fmt.Errorf("watch list entry %d: blockchain %s has no addresses", i, w.BlockchainID)
		}
	}
	return list.Blockchains, nil
}
