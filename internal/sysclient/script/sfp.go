package script

import (
	"encoding/binary"
	"strings"

	"github.com/btcsuite/btcd/txscript"
)

const (
	sfpPrefix        = "sfp@"
	sfpVersionChunk  = 1
	sfpQuantityBytes = 8
)

// SFPToken is the state carried by an SFP token output.
type SFPToken struct {
	Version string
	Amount  uint64
}

// ParseSFP recognises an SFP token output script. The second script element must push
// "sfp@<version>" and the last element carries the quantity as its first eight bytes,
// little endian.
func ParseSFP(pkScript []byte) (SFPToken, bool) {
	var chunks [][]byte
	tokenizer := txscript.MakeScriptTokenizer(0, pkScript)
	for tokenizer.Next() {
		chunks = append(chunks, tokenizer.Data())
	}
	if tokenizer.Err() != nil || len(chunks) <= sfpVersionChunk {
		return SFPToken{}, false
	}

	tag := string(chunks[sfpVersionChunk])
	if !strings.HasPrefix(tag, sfpPrefix) || len(tag) == len(sfpPrefix) {
		return SFPToken{}, false
	}

	state := chunks[len(chunks)-1]
	if len(state) < sfpQuantityBytes {
		return SFPToken{}, false
	}

	return SFPToken{
		Version: strings.TrimPrefix(tag, sfpPrefix),
		Amount:  binary.LittleEndian.Uint64(state[:sfpQuantityBytes]),
	}, true
}
