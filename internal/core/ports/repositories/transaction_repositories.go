package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// TransactionListFilter narrows transaction listings. Zero values mean "no
// filter".
type TransactionListFilter struct {
	AccountID  string
	CategoryID string
	Type       domain.TransactionType
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// TransactionRepository persists ledger entries. SaveTransaction and
// DeleteTransaction apply the given balance deltas to the touched accounts in
// the same database transaction as the row change, taking row locks, so a
// posting is never observable half-applied.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionListFilter) ([]domain.Transaction, error)
	// UpdateTransaction persists non-financial fields only (description,
	// category, notes, business flag).
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string, deltas map[string]decimal.Decimal) error
	// SumExpensesByCategorySince totals expense amounts for a category from
	// the given instant. Used by budget progress tracking.
	SumExpensesByCategorySince(ctx context.Context, categoryID string, since time.Time) (decimal.Decimal, error)
}
