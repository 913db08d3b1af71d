package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to post a transaction.
// ToAccountID is required iff Type is transfer.
type CreateTransactionRequest struct {
	AccountID         string                 `json:"accountID" binding:"required"`
	Type              domain.TransactionType `json:"type" binding:"required,oneof=income expense transfer"`
	Amount            decimal.Decimal        `json:"amount" binding:"required"`
	Date              time.Time              `json:"date" binding:"required"`
	Description       string                 `json:"description" binding:"required"`
	CategoryID        string                 `json:"categoryID"`
	ToAccountID       string                 `json:"toAccountID"`
	IsBusinessExpense bool                   `json:"isBusinessExpense"`
	Notes             string                 `json:"notes"`
	Tags              []string               `json:"tags"`

	// RecurringID links a materialized occurrence back to its template. Set
	// internally by the recurring processor, never from the wire.
	RecurringID string `json:"-"`
}

// UpdateTransactionRequest covers the only fields editable after creation.
// Amount, type, accounts and date are immutable: there is no re-posting logic
// for financial-field edits.
type UpdateTransactionRequest struct {
	Description       *string   `json:"description"`
	CategoryID        *string   `json:"categoryID"`
	IsBusinessExpense *bool     `json:"isBusinessExpense"`
	Notes             *string   `json:"notes"`
	Tags              *[]string `json:"tags"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID     string                 `json:"transactionID"`
	AccountID         string                 `json:"accountID"`
	Type              domain.TransactionType `json:"type"`
	Amount            decimal.Decimal        `json:"amount"`
	CategoryID        string                 `json:"categoryID,omitempty"`
	Description       string                 `json:"description"`
	Date              time.Time              `json:"date"`
	IsBusinessExpense bool                   `json:"isBusinessExpense"`
	ToAccountID       string                 `json:"toAccountID,omitempty"`
	Notes             string                 `json:"notes,omitempty"`
	Tags              []string               `json:"tags,omitempty"`
	RecurringID       string                 `json:"recurringID,omitempty"`
	InvoiceID         string                 `json:"invoiceID,omitempty"`
	OriginalAmount    *decimal.Decimal       `json:"originalAmount,omitempty"`
	OriginalCurrency  string                 `json:"originalCurrency,omitempty"`
	ExchangeRate      *decimal.Decimal       `json:"exchangeRate,omitempty"`
	CreatedAt         time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     txn.TransactionID,
		AccountID:         txn.AccountID,
		Type:              txn.Type,
		Amount:            txn.Amount,
		CategoryID:        txn.CategoryID,
		Description:       txn.Description,
		Date:              txn.Date,
		IsBusinessExpense: txn.IsBusinessExpense,
		ToAccountID:       txn.ToAccountID,
		Notes:             txn.Notes,
		Tags:              txn.Tags,
		RecurringID:       txn.RecurringID,
		InvoiceID:         txn.InvoiceID,
		OriginalAmount:    txn.OriginalAmount,
		OriginalCurrency:  txn.OriginalCurrency,
		ExchangeRate:      txn.ExchangeRate,
		CreatedAt:         txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID  string     `form:"accountID"`
	CategoryID string     `form:"categoryID"`
	Type       string     `form:"type"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	Limit      int        `form:"limit,default=50"`
	Offset     int        `form:"offset,default=0"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
