package services

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// InvoiceSvcFacade manages invoices and processes their payments into the
// ledger.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, clientID string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, invoiceID string, req dto.UpdateInvoiceStatusRequest) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// MarkAsPaid posts convertedAmount (or the raw total when absent) as an
	// income transaction against the chosen account and transitions the
	// invoice to paid.
	MarkAsPaid(ctx context.Context, invoiceID string, req dto.MarkInvoicePaidRequest) (*domain.Transaction, error)
	GetStats(ctx context.Context) (*domain.InvoiceStats, error)
}
