package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
)

const transactionColumns = `transaction_id, account_id, type, amount, category_id, description, date, is_business_expense, to_account_id, notes, tags, recurring_id, invoice_id, original_amount, original_currency, exchange_rate, created_at, last_updated_at`

// PgxTransactionRepository persists ledger entries. Row changes and balance
// patches share one database transaction with the touched account rows
// locked, so a posting is never observable half-applied.
type PgxTransactionRepository struct {
	BaseRepository
	accounts portsrepo.AccountBalancePatcher
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool, accounts portsrepo.AccountBalancePatcher) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accounts:       accounts,
	}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var txn domain.Transaction
	var categoryID, toAccountID, recurringID, invoiceID, originalCurrency sql.NullString
	err := row.Scan(
		&txn.TransactionID,
		&txn.AccountID,
		&txn.Type,
		&txn.Amount,
		&categoryID,
		&txn.Description,
		&txn.Date,
		&txn.IsBusinessExpense,
		&toAccountID,
		&txn.Notes,
		&txn.Tags,
		&recurringID,
		&invoiceID,
		&txn.OriginalAmount,
		&originalCurrency,
		&txn.ExchangeRate,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	txn.CategoryID = categoryID.String
	txn.ToAccountID = toAccountID.String
	txn.RecurringID = recurringID.String
	txn.InvoiceID = invoiceID.String
	txn.OriginalCurrency = originalCurrency.String
	return txn, nil
}

// SaveTransaction inserts the row and applies the balance deltas atomically.
// Every account in deltas must exist and gets locked before either write.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	accountIDs := make([]string, 0, len(deltas))
	for id := range deltas {
		accountIDs = append(accountIDs, id)
	}
	locked, err := r.accounts.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return err
	}
	if len(locked) != len(accountIDs) {
		return fmt.Errorf("%w: could not lock all accounts for posting", apperrors.ErrNotFound)
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, query,
		txn.TransactionID,
		txn.AccountID,
		txn.Type,
		txn.Amount,
		nullString(txn.CategoryID),
		txn.Description,
		txn.Date,
		txn.IsBusinessExpense,
		nullString(txn.ToAccountID),
		txn.Notes,
		txn.Tags,
		nullString(txn.RecurringID),
		nullString(txn.InvoiceID),
		txn.OriginalAmount,
		nullString(txn.OriginalCurrency),
		txn.ExchangeRate,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}

	if err := r.accounts.ApplyBalanceDeltasInTx(ctx, tx, deltas, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return &txn, nil
}

// ListTransactions retrieves transactions matching the filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions`)

	conditions := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.AccountID != "" {
		p := arg(filter.AccountID)
		conditions = append(conditions, fmt.Sprintf("(account_id = %s OR to_account_id = %s)", p, p))
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "category_id = "+arg(filter.CategoryID))
	}
	if filter.Type != "" {
		conditions = append(conditions, "type = "+arg(filter.Type))
	}
	if filter.From != nil {
		conditions = append(conditions, "date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, "date <= "+arg(*filter.To))
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	sb.WriteString(" ORDER BY date DESC, created_at DESC")
	sb.WriteString(" LIMIT " + arg(limit))
	sb.WriteString(" OFFSET " + arg(offset) + ";")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

// UpdateTransaction persists the descriptive fields only. Financial fields
// never change after posting.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET description = $2, category_id = $3, is_business_expense = $4, notes = $5, tags = $6, last_updated_at = $7
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Description,
		nullString(txn.CategoryID),
		txn.IsBusinessExpense,
		txn.Notes,
		txn.Tags,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction %s: %w", txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes the row and applies the reversal deltas
// atomically. The deltas cover only accounts that still exist; the row goes
// either way.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, deltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	accountIDs := make([]string, 0, len(deltas))
	for id := range deltas {
		accountIDs = append(accountIDs, id)
	}
	locked, err := r.accounts.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return err
	}
	if len(locked) != len(accountIDs) {
		return fmt.Errorf("%w: could not lock all accounts for reversal", apperrors.ErrNotFound)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.accounts.ApplyBalanceDeltasInTx(ctx, tx, deltas, time.Now().UTC()); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SumExpensesByCategorySince totals expense amounts for a category from the
// given instant.
func (r *PgxTransactionRepository) SumExpensesByCategorySince(ctx context.Context, categoryID string, since time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = 'expense' AND category_id = $1 AND date >= $2;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, categoryID, since).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for category %s: %w", categoryID, err)
	}
	return total, nil
}
