// Package model holds the backend-independent records every system client produces.
package model

// Blockchain describes a chain as reported by a backend.
type Blockchain struct {
	ID                      string
	Name                    string
	Network                 string
	IsMainnet               bool
	Currency                string
	BlockHeight             *uint64
	VerifiedBlockHash       *string
	FeeEstimates            []BlockchainFee
	ConfirmationsUntilFinal uint32
}

// BlockchainFee is one fee tier estimate.
type BlockchainFee struct {
	Amount                         Amount
	Tier                           string
	ConfirmationTimeInMilliseconds uint64
}
