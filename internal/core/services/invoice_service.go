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

// paymentCategoryName is the lazily created income category that invoice
// payments are filed under.
const paymentCategoryName = "Client Payments"

var (
	ErrInvoiceAlreadyPaid = errors.New("invoice is already paid")
	ErrInvoicePaidLocked  = errors.New("paid invoices cannot be edited")
	ErrClientNotFound     = errors.New("client not found")
)

// invoiceService manages invoices and turns their payments into ledger
// income.
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepository
	clientRepo  portsrepo.ClientRepository
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	categorySvc portssvc.CategorySvcFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepository,
	clientRepo portsrepo.ClientRepository,
	accountRepo portsrepo.AccountRepositoryFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	categorySvc portssvc.CategorySvcFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
		categorySvc: categorySvc,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrNotFound, ErrClientNotFound, req.ClientID)
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	if req.TaxRate.IsNegative() {
		return nil, fmt.Errorf("%w: tax rate cannot be negative", apperrors.ErrValidation)
	}

	seq, err := s.invoiceRepo.NextInvoiceSequence(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to reserve invoice number")
		return nil, fmt.Errorf("failed to reserve invoice number: %w", err)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		ClientID:      req.ClientID,
		InvoiceNumber: domain.FormatInvoiceNumber(seq),
		Items:         toDomainItems(req.Items),
		Status:        domain.InvoiceDraft,
		CurrencyCode:  req.CurrencyCode,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		TaxRate:       req.TaxRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	invoice.RecalculateTotals()

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to save invoice", slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("total", invoice.Total.String()))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListInvoices(ctx, clientID)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoicePaid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrInvoicePaidLocked)
	}

	if req.Items != nil {
		if len(*req.Items) == 0 {
			return nil, fmt.Errorf("%w: invoice needs at least one item", apperrors.ErrValidation)
		}
		invoice.Items = toDomainItems(*req.Items)
	}
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, fmt.Errorf("%w: tax rate cannot be negative", apperrors.ErrValidation)
		}
		invoice.TaxRate = *req.TaxRate
	}
	if req.IssueDate != nil {
		invoice.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	invoice.RecalculateTotals()
	invoice.LastUpdatedAt = time.Now().UTC()

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return invoice, nil
}

// UpdateStatus moves the stored status between draft, sent and paid. Marking
// paid this way records no payment; MarkAsPaid is the posting path.
func (s *invoiceService) UpdateStatus(ctx context.Context, invoiceID string, req dto.UpdateInvoiceStatusRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoicePaid && req.Status != domain.InvoicePaid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrInvoicePaidLocked)
	}

	invoice.Status = req.Status
	invoice.LastUpdatedAt = time.Now().UTC()
	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "failed to update invoice status", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice.Status == domain.InvoicePaid {
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrInvoicePaidLocked)
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "failed to delete invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

// MarkAsPaid posts the invoice as income on the chosen account and stamps the
// payment details. When the invoice currency differs from the account's, the
// caller is expected to supply the converted amount; without one the raw total
// is posted as-is, a known approximation. When conversion occurred the
// original amount and currency are kept as an audit trail.
func (s *invoiceService) MarkAsPaid(ctx context.Context, invoiceID string, req dto.MarkInvoicePaidRequest) (*domain.Transaction, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoicePaid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrInvoiceAlreadyPaid)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", req.AccountID, err)
	}

	recordAmount := invoice.Total
	var originalAmount *decimal.Decimal
	var originalCurrency string
	if req.ConvertedAmount != nil {
		if req.ConvertedAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: converted amount must be positive", apperrors.ErrValidation)
		}
		recordAmount = *req.ConvertedAmount
		total := invoice.Total
		originalAmount = &total
		originalCurrency = invoice.CurrencyCode
	} else if account.CurrencyCode != invoice.CurrencyCode {
		s.LogWarn(ctx, "posting cross-currency invoice total without conversion",
			slog.String("invoice_id", invoiceID),
			slog.String("invoice_currency", invoice.CurrencyCode),
			slog.String("account_currency", account.CurrencyCode))
	}

	category, err := s.categorySvc.FindOrCreate(ctx, paymentCategoryName, domain.CategoryIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve payment category: %w", err)
	}

	client, err := s.clientRepo.FindClientByID(ctx, invoice.ClientID)
	description := fmt.Sprintf("Payment for %s", invoice.InvoiceNumber)
	if err == nil {
		description = fmt.Sprintf("Payment for %s from %s", invoice.InvoiceNumber, client.Name)
	}

	txn := domain.Transaction{
		AccountID:        req.AccountID,
		Amount:           recordAmount,
		CategoryID:       category.CategoryID,
		Description:      description,
		Date:             time.Now().UTC(),
		InvoiceID:        invoice.InvoiceID,
		OriginalAmount:   originalAmount,
		OriginalCurrency: originalCurrency,
		ExchangeRate:     req.ExchangeRate,
	}
	posted, err := s.ledgerSvc.RecordIncome(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "failed to post invoice payment", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to post invoice payment: %w", err)
	}

	now := time.Now().UTC()
	invoice.Status = domain.InvoicePaid
	invoice.PaidAt = &now
	invoice.PaidAmount = &recordAmount
	invoice.PaidCurrency = account.CurrencyCode
	invoice.ExchangeRate = req.ExchangeRate
	invoice.LastUpdatedAt = now

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		// The income is posted; only the invoice stamp failed. Surface the
		// error so the caller retries the stamp rather than the payment.
		s.LogError(ctx, err, "posted payment but failed to stamp invoice",
			slog.String("invoice_id", invoiceID),
			slog.String("transaction_id", posted.TransactionID))
		return posted, fmt.Errorf("failed to stamp invoice as paid: %w", err)
	}

	s.LogInfo(ctx, "invoice paid",
		slog.String("invoice_id", invoiceID),
		slog.String("transaction_id", posted.TransactionID),
		slog.String("amount", recordAmount.String()),
		slog.String("currency", account.CurrencyCode))
	return posted, nil
}

// GetStats summarizes all invoices by effective status.
func (s *invoiceService) GetStats(ctx context.Context) (*domain.InvoiceStats, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	now := time.Now().UTC()
	stats := domain.InvoiceStats{
		TotalOutstanding: decimal.Zero,
		TotalPaid:        decimal.Zero,
	}
	for i := range invoices {
		stats.TotalCount++
		switch invoices[i].EffectiveStatus(now) {
		case domain.InvoiceDraft:
			stats.DraftCount++
		case domain.InvoiceSent:
			stats.SentCount++
			stats.TotalOutstanding = stats.TotalOutstanding.Add(invoices[i].Total)
		case domain.InvoiceOverdue:
			stats.OverdueCount++
			stats.TotalOutstanding = stats.TotalOutstanding.Add(invoices[i].Total)
		case domain.InvoicePaid:
			stats.PaidCount++
			if invoices[i].PaidAmount != nil {
				stats.TotalPaid = stats.TotalPaid.Add(*invoices[i].PaidAmount)
			} else {
				stats.TotalPaid = stats.TotalPaid.Add(invoices[i].Total)
			}
		}
	}
	return &stats, nil
}

func toDomainItems(items []dto.InvoiceItemRequest) []domain.InvoiceItem {
	out := make([]domain.InvoiceItem, len(items))
	for i, it := range items {
		out[i] = domain.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return out
}
