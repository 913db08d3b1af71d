package services

import (
	"context"
	"time"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// RecurringSvcFacade owns recurring templates and their schedule.
type RecurringSvcFacade interface {
	CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest) (*domain.RecurringTransaction, error)
	GetRecurringByID(ctx context.Context, recurringID string) (*domain.RecurringTransaction, error)
	ListRecurring(ctx context.Context, activeOnly bool) ([]domain.RecurringTransaction, error)
	UpdateRecurring(ctx context.Context, recurringID string, req dto.UpdateRecurringRequest) (*domain.RecurringTransaction, error)
	DeleteRecurring(ctx context.Context, recurringID string) error

	// Process materializes one transaction at the template's scheduled due
	// date, then advances the schedule. A failed posting leaves the schedule
	// untouched.
	Process(ctx context.Context, recurringID string) (*domain.Transaction, error)
	// Skip advances the schedule without creating a transaction.
	Skip(ctx context.Context, recurringID string) (time.Time, error)
	// MonthlyProjection normalizes active templates to per-month totals.
	MonthlyProjection(ctx context.Context) (*domain.RecurringProjection, error)
}
