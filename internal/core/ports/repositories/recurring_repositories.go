package repositories

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// RecurringRepository persists recurring templates.
type RecurringRepository interface {
	SaveRecurring(ctx context.Context, template domain.RecurringTransaction) error
	FindRecurringByID(ctx context.Context, recurringID string) (*domain.RecurringTransaction, error)
	ListRecurring(ctx context.Context, activeOnly bool) ([]domain.RecurringTransaction, error)
	UpdateRecurring(ctx context.Context, template domain.RecurringTransaction) error
	DeleteRecurring(ctx context.Context, recurringID string) error
}
