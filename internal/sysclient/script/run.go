package script

import (
	"regexp"
	"strconv"
)

// A run transfer payload is the third OP_RETURN part of a run token transaction:
//
//	payload = *any "[" DQUOTE mintid "_" *any "," amount closing
//	mintid  = 1*(ALPHA / DIGIT)
//	amount  = 1*DIGIT
//	closing = 1*("]" / "}" / DQUOTE / SP)
//
// The mint id runs from the first `["` to the first underscore and the amount follows the last comma.
var (
	runMintID = regexp.MustCompile(`\["([A-Za-z0-9]+)_`)
	runAmount = regexp.MustCompile(`,([0-9]+)[\]}" ]+$`)
)

// RunTransfer is the token movement described by a run payload.
type RunTransfer struct {
	MintID string
	Amount uint64
}

// ParseRunPayload extracts the mint id and amount. Payloads that do not match yield false.
func ParseRunPayload(s string) (RunTransfer, bool) {
	mint := runMintID.FindStringSubmatch(s)
	if mint == nil {
		return RunTransfer{}, false
	}
	amount := runAmount.FindStringSubmatch(s)
	if amount == nil {
		return RunTransfer{}, false
	}
	value, err := strconv.ParseUint(amount[1], 10, 64)
	if err != nil {
		return RunTransfer{}, false
	}
	return RunTransfer{MintID: mint[1], Amount: value}, true
}
