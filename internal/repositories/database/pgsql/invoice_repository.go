package pgsql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
)

const invoiceColumns = `invoice_id, client_id, invoice_number, items, status, currency_code, issue_date, due_date, subtotal, tax, tax_rate, total, paid_at, paid_amount, paid_currency, exchange_rate, created_at, last_updated_at`

// PgxInvoiceRepository persists invoices. Line items live as a JSONB column
// on the invoice row; they are never queried independently.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	var items []byte
	var paidCurrency sql.NullString
	err := row.Scan(
		&inv.InvoiceID,
		&inv.ClientID,
		&inv.InvoiceNumber,
		&items,
		&inv.Status,
		&inv.CurrencyCode,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.Subtotal,
		&inv.Tax,
		&inv.TaxRate,
		&inv.Total,
		&inv.PaidAt,
		&inv.PaidAmount,
		&paidCurrency,
		&inv.ExchangeRate,
		&inv.CreatedAt,
		&inv.LastUpdatedAt,
	)
	if err != nil {
		return domain.Invoice{}, err
	}
	if err := json.Unmarshal(items, &inv.Items); err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to decode invoice items: %w", err)
	}
	inv.PaidCurrency = paidCurrency.String
	return inv, nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return fmt.Errorf("failed to encode invoice items: %w", err)
	}

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = r.Pool.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.ClientID,
		invoice.InvoiceNumber,
		items,
		invoice.Status,
		invoice.CurrencyCode,
		invoice.IssueDate,
		invoice.DueDate,
		invoice.Subtotal,
		invoice.Tax,
		invoice.TaxRate,
		invoice.Total,
		invoice.PaidAt,
		invoice.PaidAmount,
		nullString(invoice.PaidCurrency),
		invoice.ExchangeRate,
		invoice.CreatedAt,
		invoice.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, invoice.InvoiceNumber)
		}
		return fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	inv, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	args := []any{}
	if clientID != "" {
		query += ` WHERE client_id = $1`
		args = append(args, clientID)
	}
	query += ` ORDER BY issue_date DESC, invoice_number DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return fmt.Errorf("failed to encode invoice items: %w", err)
	}

	query := `
		UPDATE invoices
		SET items = $2, status = $3, issue_date = $4, due_date = $5, subtotal = $6, tax = $7, tax_rate = $8, total = $9, paid_at = $10, paid_amount = $11, paid_currency = $12, exchange_rate = $13, last_updated_at = $14
		WHERE invoice_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID,
		items,
		invoice.Status,
		invoice.IssueDate,
		invoice.DueDate,
		invoice.Subtotal,
		invoice.Tax,
		invoice.TaxRate,
		invoice.Total,
		invoice.PaidAt,
		invoice.PaidAmount,
		nullString(invoice.PaidCurrency),
		invoice.ExchangeRate,
		invoice.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update invoice %s: %w", invoice.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// NextInvoiceSequence reserves the next invoice number from the database
// sequence. Concurrent creates never collide; gaps from failed creates are
// acceptable.
func (r *PgxInvoiceRepository) NextInvoiceSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.Pool.QueryRow(ctx, `SELECT nextval('invoice_number_seq');`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to reserve invoice sequence: %w", err)
	}
	return seq, nil
}
