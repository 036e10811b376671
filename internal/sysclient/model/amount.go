package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a currency id and an exact decimal value kept in its wire form.
type Amount struct {
	Currency string
	Value    string
}

// NewAmount validates value as a decimal number before wrapping it.
func NewAmount(currency, value string) (Amount, error) {
	if _, err := decimal.NewFromString(value); err != nil {
		return Amount{}, fmt.Errorf("amount %q: %w", value, err)
	}
	return Amount{Currency: currency, Value: value}, nil
}

// Decimal parses the value.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(a.Value)
}
