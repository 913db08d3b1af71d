package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
)

const recurringColumns = `recurring_id, account_id, type, amount, category_id, description, frequency, next_due_date, last_processed_date, is_active, notes, created_at, last_updated_at`

type PgxRecurringRepository struct {
	BaseRepository
}

func newPgxRecurringRepository(pool *pgxpool.Pool) *PgxRecurringRepository {
	return &PgxRecurringRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.RecurringRepository = (*PgxRecurringRepository)(nil)

func scanRecurring(row pgx.Row) (domain.RecurringTransaction, error) {
	var t domain.RecurringTransaction
	var categoryID sql.NullString
	err := row.Scan(
		&t.RecurringID,
		&t.AccountID,
		&t.Type,
		&t.Amount,
		&categoryID,
		&t.Description,
		&t.Frequency,
		&t.NextDueDate,
		&t.LastProcessedDate,
		&t.IsActive,
		&t.Notes,
		&t.CreatedAt,
		&t.LastUpdatedAt,
	)
	if err != nil {
		return domain.RecurringTransaction{}, err
	}
	t.CategoryID = categoryID.String
	return t, nil
}

func (r *PgxRecurringRepository) SaveRecurring(ctx context.Context, template domain.RecurringTransaction) error {
	query := `
		INSERT INTO recurring_transactions (` + recurringColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		template.RecurringID,
		template.AccountID,
		template.Type,
		template.Amount,
		nullString(template.CategoryID),
		template.Description,
		template.Frequency,
		template.NextDueDate,
		template.LastProcessedDate,
		template.IsActive,
		template.Notes,
		template.CreatedAt,
		template.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save recurring template %s: %w", template.RecurringID, err)
	}
	return nil
}

func (r *PgxRecurringRepository) FindRecurringByID(ctx context.Context, recurringID string) (*domain.RecurringTransaction, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_transactions WHERE recurring_id = $1;`

	t, err := scanRecurring(r.Pool.QueryRow(ctx, query, recurringID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring template by ID %s: %w", recurringID, err)
	}
	return &t, nil
}

func (r *PgxRecurringRepository) ListRecurring(ctx context.Context, activeOnly bool) ([]domain.RecurringTransaction, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_transactions`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY next_due_date;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.RecurringTransaction{}
	for rows.Next() {
		t, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring template row: %w", err)
		}
		templates = append(templates, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating recurring template rows: %w", rows.Err())
	}
	return templates, nil
}

func (r *PgxRecurringRepository) UpdateRecurring(ctx context.Context, template domain.RecurringTransaction) error {
	query := `
		UPDATE recurring_transactions
		SET amount = $2, category_id = $3, description = $4, frequency = $5, next_due_date = $6, last_processed_date = $7, is_active = $8, notes = $9, last_updated_at = $10
		WHERE recurring_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		template.RecurringID,
		template.Amount,
		nullString(template.CategoryID),
		template.Description,
		template.Frequency,
		template.NextDueDate,
		template.LastProcessedDate,
		template.IsActive,
		template.Notes,
		template.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update recurring template %s: %w", template.RecurringID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRecurring removes the template. Transactions it materialized keep
// their dangling recurring reference (ON DELETE SET NULL).
func (r *PgxRecurringRepository) DeleteRecurring(ctx context.Context, recurringID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM recurring_transactions WHERE recurring_id = $1;`, recurringID)
	if err != nil {
		return fmt.Errorf("failed to delete recurring template %s: %w", recurringID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
