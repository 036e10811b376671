package model

// Transfer moves an amount between two addresses inside a transaction.
type Transfer struct {
	ID               string
	Source           *string
	Target           *string
	Amount           Amount
	Acknowledgements uint64
	Index            uint64
	TransactionID    *string
	BlockchainID     string
	Meta             map[string]string
}
