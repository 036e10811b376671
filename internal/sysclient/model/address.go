package model

// Address is an address with its balances on one chain.
type Address struct {
	BlockchainID string
	Address      string
	Nonce        *uint64
	Timestamp    uint64
	Meta         map[string]string
	Balances     []Amount
}

// HederaAccount is an account record of Hedera-style chains.
type HederaAccount struct {
	ID      string
	Balance *uint64
	Deleted bool
}
