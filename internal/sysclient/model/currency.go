package model

import "strings"

// Currency is a native coin or token known to a backend.
type Currency struct {
	ID            string
	Name          string
	Code          string
	Type          string
	BlockchainID  string
	Address       *string
	Verified      bool
	Denominations []CurrencyDenomination
}

// CurrencyDenomination is one display unit of a currency.
type CurrencyDenomination struct {
	Name     string
	Code     string
	Decimals uint8
	Symbol   string
}

var currencySymbols = map[string]string{
	"btc": "₿",
	"eth": "Ξ",
}

// LookupSymbol returns the display symbol for a denomination code.
func LookupSymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return strings.ToUpper(code)
}
