package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType determines how a transaction's amount affects balances.
// Amount is always stored non-negative; direction comes from the type and the
// account types involved, never from the sign of the amount.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer:
		return true
	}
	return false
}

// Transaction is a single ledger entry against one account (two for
// transfers). RecurringID and InvoiceID are back-references to the template or
// invoice that produced the entry, not ownership links.
type Transaction struct {
	TransactionID     string          `json:"transactionID"`
	AccountID         string          `json:"accountID"`
	Type              TransactionType `json:"type"`
	Amount            decimal.Decimal `json:"amount"` // always >= 0
	CategoryID        string          `json:"categoryID"`  // empty = uncategorized
	Description       string          `json:"description"`
	Date              time.Time       `json:"date"`
	IsBusinessExpense bool            `json:"isBusinessExpense"`
	ToAccountID       string          `json:"toAccountID"` // set iff Type == transfer
	Notes             string          `json:"notes"`
	Tags              []string        `json:"tags"`
	RecurringID       string          `json:"recurringID"`
	InvoiceID         string          `json:"invoiceID"`

	// Conversion audit trail, populated when the posted amount was converted
	// from another currency (invoice payments).
	OriginalAmount   *decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string           `json:"originalCurrency"`
	ExchangeRate     *decimal.Decimal `json:"exchangeRate"`

	AuditFields
}
