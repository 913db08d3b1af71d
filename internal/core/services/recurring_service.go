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

var ErrRecurringTransfer = errors.New("recurring templates support income and expense only")

// recurringService owns templates and their schedule. Materializing a
// template goes through the ledger so the posting rules are applied in
// exactly one place.
type recurringService struct {
	BaseService
	recurringRepo portsrepo.RecurringRepository
	ledgerSvc     portssvc.LedgerSvcFacade
}

// NewRecurringService creates a new RecurringService.
func NewRecurringService(recurringRepo portsrepo.RecurringRepository, ledgerSvc portssvc.LedgerSvcFacade) portssvc.RecurringSvcFacade {
	return &recurringService{
		recurringRepo: recurringRepo,
		ledgerSvc:     ledgerSvc,
	}
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest) (*domain.RecurringTransaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	if req.Type == domain.TransactionTransfer || !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrRecurringTransfer)
	}
	if !req.Frequency.Valid() {
		return nil, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, req.Frequency)
	}

	now := time.Now().UTC()
	template := domain.RecurringTransaction{
		RecurringID: uuid.NewString(),
		AccountID:   req.AccountID,
		Type:        req.Type,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Frequency:   req.Frequency,
		NextDueDate: req.NextDueDate,
		IsActive:    true,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.recurringRepo.SaveRecurring(ctx, template); err != nil {
		s.LogError(ctx, err, "failed to save recurring template", slog.String("description", req.Description))
		return nil, fmt.Errorf("failed to save recurring template: %w", err)
	}
	return &template, nil
}

func (s *recurringService) GetRecurringByID(ctx context.Context, recurringID string) (*domain.RecurringTransaction, error) {
	return s.recurringRepo.FindRecurringByID(ctx, recurringID)
}

func (s *recurringService) ListRecurring(ctx context.Context, activeOnly bool) ([]domain.RecurringTransaction, error) {
	return s.recurringRepo.ListRecurring(ctx, activeOnly)
}

func (s *recurringService) UpdateRecurring(ctx context.Context, recurringID string, req dto.UpdateRecurringRequest) (*domain.RecurringTransaction, error) {
	template, err := s.recurringRepo.FindRecurringByID(ctx, recurringID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
		}
		template.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		template.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.Frequency != nil {
		if !req.Frequency.Valid() {
			return nil, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, *req.Frequency)
		}
		template.Frequency = *req.Frequency
	}
	if req.NextDueDate != nil {
		template.NextDueDate = *req.NextDueDate
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		template.Notes = *req.Notes
	}
	template.LastUpdatedAt = time.Now().UTC()

	if err := s.recurringRepo.UpdateRecurring(ctx, *template); err != nil {
		s.LogError(ctx, err, "failed to update recurring template", slog.String("recurring_id", recurringID))
		return nil, fmt.Errorf("failed to update recurring template: %w", err)
	}
	return template, nil
}

func (s *recurringService) DeleteRecurring(ctx context.Context, recurringID string) error {
	if _, err := s.recurringRepo.FindRecurringByID(ctx, recurringID); err != nil {
		return err
	}
	if err := s.recurringRepo.DeleteRecurring(ctx, recurringID); err != nil {
		s.LogError(ctx, err, "failed to delete recurring template", slog.String("recurring_id", recurringID))
		return fmt.Errorf("failed to delete recurring template: %w", err)
	}
	return nil
}

// Process posts one transaction dated at the template's scheduled due date,
// then advances the schedule. The transaction is posted first: if the posting
// fails the schedule stays put, so nothing is ever skipped silently. Inactive
// templates can still be processed explicitly.
func (s *recurringService) Process(ctx context.Context, recurringID string) (*domain.Transaction, error) {
	template, err := s.recurringRepo.FindRecurringByID(ctx, recurringID)
	if err != nil {
		return nil, err
	}

	req := dto.CreateTransactionRequest{
		AccountID:   template.AccountID,
		Type:        template.Type,
		Amount:      template.Amount,
		Date:        template.NextDueDate,
		Description: template.Description,
		CategoryID:  template.CategoryID,
		Notes:       template.Notes,
		RecurringID: template.RecurringID,
	}
	txn, err := s.ledgerSvc.CreateTransaction(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "failed to post recurring transaction", slog.String("recurring_id", recurringID))
		return nil, fmt.Errorf("failed to post recurring transaction: %w", err)
	}

	processed := template.NextDueDate
	template.LastProcessedDate = &processed
	template.NextDueDate = domain.NextDueDate(template.NextDueDate, template.Frequency)
	template.LastUpdatedAt = time.Now().UTC()

	if err := s.recurringRepo.UpdateRecurring(ctx, *template); err != nil {
		// The transaction exists; only the schedule advance failed. Surface
		// the error so the caller can retry the advance.
		s.LogError(ctx, err, "posted transaction but failed to advance schedule",
			slog.String("recurring_id", recurringID),
			slog.String("transaction_id", txn.TransactionID))
		return txn, fmt.Errorf("failed to advance schedule: %w", err)
	}

	s.LogInfo(ctx, "recurring template processed",
		slog.String("recurring_id", recurringID),
		slog.String("transaction_id", txn.TransactionID),
		slog.Time("next_due", template.NextDueDate))
	return txn, nil
}

// Skip advances the schedule by one period without posting anything.
func (s *recurringService) Skip(ctx context.Context, recurringID string) (time.Time, error) {
	template, err := s.recurringRepo.FindRecurringByID(ctx, recurringID)
	if err != nil {
		return time.Time{}, err
	}

	template.NextDueDate = domain.NextDueDate(template.NextDueDate, template.Frequency)
	template.LastUpdatedAt = time.Now().UTC()

	if err := s.recurringRepo.UpdateRecurring(ctx, *template); err != nil {
		s.LogError(ctx, err, "failed to skip recurring occurrence", slog.String("recurring_id", recurringID))
		return time.Time{}, fmt.Errorf("failed to skip recurring occurrence: %w", err)
	}
	return template.NextDueDate, nil
}

// MonthlyProjection normalizes every active template to a per-month figure
// and sums income against expense.
func (s *recurringService) MonthlyProjection(ctx context.Context) (*domain.RecurringProjection, error) {
	templates, err := s.recurringRepo.ListRecurring(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring templates: %w", err)
	}

	projection := domain.RecurringProjection{
		MonthlyIncome:  decimal.Zero,
		MonthlyExpense: decimal.Zero,
	}
	for _, t := range templates {
		monthly := t.Amount.Mul(domain.MonthlyFactor(t.Frequency))
		switch t.Type {
		case domain.TransactionIncome:
			projection.MonthlyIncome = projection.MonthlyIncome.Add(monthly)
		case domain.TransactionExpense:
			projection.MonthlyExpense = projection.MonthlyExpense.Add(monthly)
		}
	}
	projection.MonthlyNet = projection.MonthlyIncome.Sub(projection.MonthlyExpense)
	return &projection, nil
}
