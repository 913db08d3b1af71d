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

var ErrBudgetExists = errors.New("category already has a budget")

// budgetService tracks spending caps. Progress is derived from the
// transaction stream at read time; nothing here writes balances.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
	txnRepo    portsrepo.TransactionRepository
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, txnRepo portsrepo.TransactionRepository) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: budgetRepo,
		txnRepo:    txnRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}
	if !req.Period.Valid() {
		return nil, fmt.Errorf("%w: unknown budget period %q", apperrors.ErrValidation, req.Period)
	}

	if existing, err := s.budgetRepo.FindBudgetByCategoryID(ctx, req.CategoryID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrDuplicate, ErrBudgetExists, req.CategoryID)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:   uuid.NewString(),
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Period:     req.Period,
		StartDate:  req.StartDate,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "failed to save budget", slog.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	return s.budgetRepo.FindBudgetByID(ctx, budgetID)
}

func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	return s.budgetRepo.ListBudgets(ctx)
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
		}
		budget.Amount = *req.Amount
	}
	if req.Period != nil {
		if !req.Period.Valid() {
			return nil, fmt.Errorf("%w: unknown budget period %q", apperrors.ErrValidation, *req.Period)
		}
		budget.Period = *req.Period
	}
	if req.IsActive != nil {
		budget.IsActive = *req.IsActive
	}
	budget.LastUpdatedAt = time.Now().UTC()

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "failed to update budget", slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	if _, err := s.budgetRepo.FindBudgetByID(ctx, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		s.LogError(ctx, err, "failed to delete budget", slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

// GetProgress sums expenses in the budget's category since the start of the
// current period.
func (s *budgetService) GetProgress(ctx context.Context, budgetID string) (*domain.BudgetProgress, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	progress, err := s.progressFor(ctx, *budget, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *budgetService) ListProgress(ctx context.Context) ([]domain.BudgetProgress, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	now := time.Now().UTC()
	out := make([]domain.BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		if !b.IsActive {
			continue
		}
		p, err := s.progressFor(ctx, b, now)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *budgetService) progressFor(ctx context.Context, budget domain.Budget, now time.Time) (*domain.BudgetProgress, error) {
	periodStart := budget.PeriodStart(now)
	spent, err := s.txnRepo.SumExpensesByCategorySince(ctx, budget.CategoryID, periodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to sum spend for budget %s: %w", budget.BudgetID, err)
	}

	percent := decimal.Zero
	if budget.Amount.IsPositive() {
		percent = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100))
	}
	return &domain.BudgetProgress{
		Budget:      budget,
		Spent:       spent,
		Remaining:   budget.Amount.Sub(spent),
		PercentUsed: percent,
		PeriodStart: periodStart,
	}, nil
}
