package model

import "time"

// Block is the canonical block record.
type Block struct {
	ID               string
	BlockchainID     string
	Hash             string
	Height           uint64
	Header           *string
	Raw              []byte
	Mined            time.Time
	Size             uint64
	PrevHash         *string
	NextHash         *string
	Transactions     []Transaction
	Acknowledgements uint64
}
