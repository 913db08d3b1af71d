package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
)

// PgxReportingRepository runs aggregation queries over the transaction
// stream. Transfers are internal moves and stay out of every report.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetCashflowData aggregates income and expense per calendar month.
func (r *PgxReportingRepository) GetCashflowData(ctx context.Context, from, to time.Time) ([]domain.CashflowRow, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM') AS month,
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0) AS income,
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0) AS expense
		FROM transactions
		WHERE type IN ('income', 'expense') AND date >= $1 AND date <= $2
		GROUP BY month
		ORDER BY month;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query cashflow data: %w", err)
	}
	defer rows.Close()

	out := []domain.CashflowRow{}
	for rows.Next() {
		var row domain.CashflowRow
		if err := rows.Scan(&row.Month, &row.Income, &row.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan cashflow row: %w", err)
		}
		row.Net = row.Income.Sub(row.Expense)
		out = append(out, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cashflow rows: %w", rows.Err())
	}
	return out, nil
}

// GetBusinessExpenseData totals business-flagged expenses per category.
// Uncategorized expenses show up under an empty category ID.
func (r *PgxReportingRepository) GetBusinessExpenseData(ctx context.Context, from, to time.Time) ([]domain.CategorySpendRow, error) {
	query := `
		SELECT COALESCE(t.category_id, ''), COALESCE(c.name, 'Uncategorized'), SUM(t.amount)
		FROM transactions t
		LEFT JOIN categories c ON c.category_id = t.category_id
		WHERE t.type = 'expense' AND t.is_business_expense = TRUE AND t.date >= $1 AND t.date <= $2
		GROUP BY t.category_id, c.name
		ORDER BY SUM(t.amount) DESC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query business expense data: %w", err)
	}
	defer rows.Close()

	out := []domain.CategorySpendRow{}
	for rows.Next() {
		var row domain.CategorySpendRow
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan business expense row: %w", err)
		}
		out = append(out, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating business expense rows: %w", rows.Err())
	}
	return out, nil
}
