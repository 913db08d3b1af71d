package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a manually maintained conversion rate between two
// currencies. The system never fetches rates from the outside; callers use
// the stored rate (or a manual override) to compute converted amounts before
// posting cross-currency payments.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
