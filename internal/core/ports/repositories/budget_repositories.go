package repositories

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// BudgetRepository persists budgets.
type BudgetRepository interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	// FindBudgetByCategoryID backs the one-budget-per-category rule.
	FindBudgetByCategoryID(ctx context.Context, categoryID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	DeleteBudget(ctx context.Context, budgetID string) error
}
