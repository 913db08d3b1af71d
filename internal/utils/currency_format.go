package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount as a localized currency string, e.g.
// ("1234.5", "USD") -> "$1,234.50". Unknown currency codes fall back to the
// plain decimal string.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		return amount.String()
	}
	minor := amount.Shift(int32(currency.Fraction)).Round(0)
	return money.New(minor.IntPart(), currencyCode).Display()
}

// FormatWithPrecision rounds an amount to the given number of decimal places
// and renders it without a currency symbol.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
