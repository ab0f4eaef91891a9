package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is one of the supported currencies.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyCOP Currency = "COP"
	CurrencyARS Currency = "ARS"
	CurrencyCLP Currency = "CLP"
)

// Currencies returns all supported currencies.
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyCOP, CurrencyARS, CurrencyCLP}
}

// maxAmounts holds the single-amount ceiling per currency.
var maxAmounts = map[Currency]decimal.Decimal{
	CurrencyUSD: decimal.NewFromInt(1_000_000),
	CurrencyEUR: decimal.NewFromInt(1_000_000),
	CurrencyCOP: decimal.NewFromInt(4_000_000_000),
	CurrencyARS: decimal.NewFromInt(1_000_000_000),
	CurrencyCLP: decimal.NewFromInt(1_000_000_000),
}

// Valid reports whether the currency is in the supported set.
func (c Currency) Valid() bool {
	_, ok := maxAmounts[c]
	return ok
}

// MaxAmount returns the maximum allowed single amount for the currency.
// Unknown currencies get the USD ceiling.
func (c Currency) MaxAmount() decimal.Decimal {
	if max, ok := maxAmounts[c]; ok {
		return max
	}

	return maxAmounts[CurrencyUSD]
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Unknown currencies are rejected at the boundary.
func (c *Currency) UnmarshalText(text []byte) error {
	currency := Currency(text)
	if !currency.Valid() {
		return fmt.Errorf("unsupported currency: %q", string(text))
	}

	*c = currency
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c), nil
}
