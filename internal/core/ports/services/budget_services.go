package services

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// BudgetSvcFacade manages budgets and their read-only spend tracking.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error

	// GetProgress computes spend against the budget since the start of the
	// current period.
	GetProgress(ctx context.Context, budgetID string) (*domain.BudgetProgress, error)
	ListProgress(ctx context.Context) ([]domain.BudgetProgress, error)
}
