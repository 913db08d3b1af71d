package services

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// LedgerSvcFacade is the single authority over account balances. Every
// balance movement in the system goes through one of these methods (or
// through RecordIncome on behalf of the invoice processor).
type LedgerSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error

	// RecordIncome posts a pre-built income transaction, applying the same
	// income rule as CreateTransaction but skipping its request validation.
	// Used by the invoice payment processor.
	RecordIncome(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}
