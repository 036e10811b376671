package model

import "time"

// TransactionStatus is the lifecycle state reported by a backend.
type TransactionStatus string

const (
	StatusConfirmed TransactionStatus = "confirmed"
	StatusSubmitted TransactionStatus = "submitted"
	StatusFailed    TransactionStatus = "failed"
	StatusReverted  TransactionStatus = "reverted"
	StatusRejected  TransactionStatus = "rejected"
)

// TransactionType tags transactions carrying an application-layer token payload.
type TransactionType string

const (
	TypePlain TransactionType = ""
	TypeSFP   TransactionType = "sfp"
	TypeRun   TransactionType = "run"
)

// Transaction is the canonical transaction record.
type Transaction struct {
	ID               string
	BlockchainID     string
	Hash             string
	Identifier       string
	BlockHash        *string
	BlockHeight      *uint64
	Index            *uint64
	Confirmations    *uint64
	Status           TransactionStatus
	Size             uint64
	Timestamp        *time.Time
	FirstSeen        *time.Time
	Raw              []byte
	Fee              *Amount
	Transfers        []Transfer
	Acknowledgements uint64
	Meta             map[string]string

	Version  *int64
	LockTime *int64
	Inputs   []TransactionInput
	Outputs  []TransactionOutput

	Type          TransactionType
	TokenAmount   *uint64
	MintID        *string
	SenderAddress *string
	FromAddress   *string
}

// TransactionInput is a spent outpoint as reported by node-style backends.
type TransactionInput struct {
	TxHash    string
	Vout      uint32
	Script    string
	Signature string
	Sequence  int64
}

// TransactionOutput is a created output; Amount is in satoshis.
type TransactionOutput struct {
	Script    string
	Amount    uint64
	Addresses []string
}

// TransactionIdentifier links a backend transaction id to its chain identifier.
type TransactionIdentifier struct {
	ID           string
	BlockchainID string
	Hash         *string
	Identifier   string
}

// TransactionFee is a fee estimate for submitting serialized transaction bytes.
type TransactionFee struct {
	CostUnits  uint64
	Properties map[string]string
}

// TransactionHistory is a (hash, height) pair from an address history listing.
type TransactionHistory struct {
	Hash   string
	Height uint64
}
