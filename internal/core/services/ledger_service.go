package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

var (
	ErrAmountNotPositive   = errors.New("transaction amount must be positive")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransferNeedsTarget = errors.New("transfer requires a destination account")
	ErrTransferSameAccount = errors.New("transfer source and destination must differ")
	ErrCurrencyMismatch    = errors.New("transfer accounts must share a currency")
)

// ledgerService is the only writer of account balances. Every posting builds
// a per-account delta map in the domain layer and hands it to the repository,
// which applies row change and balance patches in one database transaction.
type ledgerService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(txnRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateTransaction validates the request, resolves the touched accounts,
// computes the posting deltas and persists row plus balance changes
// atomically.
func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	isTransfer := req.Type == domain.TransactionTransfer
	if isTransfer {
		if req.ToAccountID == "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTransferNeedsTarget)
		}
		if req.ToAccountID == req.AccountID {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTransferSameAccount)
		}
	} else if req.ToAccountID != "" {
		return nil, fmt.Errorf("%w: toAccountID is only valid on transfers", apperrors.ErrValidation)
	}

	accountIDs := []string{req.AccountID}
	if isTransfer {
		accountIDs = append(accountIDs, req.ToAccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch accounts for posting")
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	source, ok := accounts[req.AccountID]
	if !ok {
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrNotFound, ErrAccountNotFound, req.AccountID)
	}
	var dest *domain.Account
	if isTransfer {
		d, ok := accounts[req.ToAccountID]
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrNotFound, ErrAccountNotFound, req.ToAccountID)
		}
		if d.CurrencyCode != source.CurrencyCode {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrCurrencyMismatch)
		}
		dest = &d
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:     uuid.NewString(),
		AccountID:         req.AccountID,
		Type:              req.Type,
		Amount:            req.Amount,
		CategoryID:        req.CategoryID,
		Description:       req.Description,
		Date:              req.Date,
		IsBusinessExpense: req.IsBusinessExpense,
		ToAccountID:       req.ToAccountID,
		Notes:             req.Notes,
		Tags:              req.Tags,
		RecurringID:       req.RecurringID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	deltas, err := domain.PostingDeltas(txn, source, dest)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, deltas); err != nil {
		s.LogError(ctx, err, "failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// RecordIncome posts a pre-built income transaction on behalf of the invoice
// payment processor. The caller owns request-level validation; the income
// posting rule applied here is identical to CreateTransaction's.
func (s *ledgerService) RecordIncome(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if txn.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	txn.Type = domain.TransactionIncome
	if txn.TransactionID == "" {
		txn.TransactionID = uuid.NewString()
	}
	now := time.Now().UTC()
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = now
	}
	txn.LastUpdatedAt = now

	source, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", txn.AccountID, err)
	}

	deltas, err := domain.PostingDeltas(txn, *source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn, deltas); err != nil {
		s.LogError(ctx, err, "failed to record income", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &txn, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionListFilter{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		Type:       domain.TransactionType(params.Type),
		From:       params.From,
		To:         params.To,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.txnRepo.ListTransactions(ctx, filter)
}

// UpdateTransaction edits descriptive fields only. Amount, type, accounts and
// date are immutable after posting; changing them means delete and re-create.
func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.IsBusinessExpense != nil {
		txn.IsBusinessExpense = *req.IsBusinessExpense
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	if req.Tags != nil {
		txn.Tags = *req.Tags
	}
	txn.LastUpdatedAt = time.Now().UTC()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

// DeleteTransaction reverses the original posting exactly and removes the
// row. Accounts deleted since the posting are skipped: the row still goes,
// and surviving accounts are still restored.
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	deltas, err := s.reversalForSurvivors(ctx, *txn)
	if err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, deltas); err != nil {
		s.LogError(ctx, err, "failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction deleted and posting reversed",
		slog.String("transaction_id", transactionID),
		slog.Int("accounts_restored", len(deltas)))
	return nil
}

// reversalForSurvivors computes the reversal deltas restricted to accounts
// that still exist.
func (s *ledgerService) reversalForSurvivors(ctx context.Context, txn domain.Transaction) (map[string]decimal.Decimal, error) {
	accountIDs := []string{txn.AccountID}
	if txn.Type == domain.TransactionTransfer && txn.ToAccountID != "" {
		accountIDs = append(accountIDs, txn.ToAccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	deltas := make(map[string]decimal.Decimal)
	if source, ok := accounts[txn.AccountID]; ok {
		srcDelta, err := domain.SourceDelta(txn.Type, txn.Amount, source.Type)
		if err != nil {
			return nil, err
		}
		deltas[source.AccountID] = srcDelta.Neg()
	}
	if txn.Type == domain.TransactionTransfer {
		if dest, ok := accounts[txn.ToAccountID]; ok {
			deltas[dest.AccountID] = deltas[dest.AccountID].Sub(domain.DestinationDelta(txn.Amount, dest.Type))
		}
	}
	return deltas, nil
}
