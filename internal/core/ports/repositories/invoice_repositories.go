package repositories

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// InvoiceRepository persists invoices and their embedded line items.
type InvoiceRepository interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, clientID string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
	DeleteInvoice(ctx context.Context, invoiceID string) error
	// NextInvoiceSequence reserves the next value of the invoice numbering
	// sequence. Atomic, so concurrent creates never collide.
	NextInvoiceSequence(ctx context.Context) (int64, error)
}
