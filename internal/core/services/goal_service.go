package services

import (
	"context"
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

// goalService manages savings goals. Contributions are bookkeeping against
// the goal only; they never move account balances.
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepository
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo portsrepo.GoalRepository) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	goal := domain.Goal{
		GoalID:          uuid.NewString(),
		Name:            req.Name,
		TargetAmount:    req.TargetAmount,
		CurrentAmount:   decimal.Zero,
		TargetDate:      req.TargetDate,
		LinkedAccountID: req.LinkedAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "failed to save goal", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	return s.goalRepo.FindGoalByID(ctx, goalID)
}

func (s *goalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return s.goalRepo.ListGoals(ctx)
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}
	if req.LinkedAccountID != nil {
		goal.LinkedAccountID = *req.LinkedAccountID
	}
	goal.LastUpdatedAt = time.Now().UTC()

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "failed to update goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string) error {
	if _, err := s.goalRepo.FindGoalByID(ctx, goalID); err != nil {
		return err
	}
	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "failed to delete goal", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// AddContribution moves the goal's progress forward. Reaching the target
// marks the goal complete automatically.
func (s *goalService) AddContribution(ctx context.Context, goalID string, req dto.ContributeRequest) (*domain.Goal, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: contribution must be positive", apperrors.ErrValidation)
	}

	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(req.Amount)
	if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.IsCompleted = true
	}
	goal.LastUpdatedAt = time.Now().UTC()

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "failed to record contribution", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to record contribution: %w", err)
	}

	s.LogInfo(ctx, "goal contribution recorded",
		slog.String("goal_id", goalID),
		slog.String("amount", req.Amount.String()),
		slog.Bool("completed", goal.IsCompleted))
	return goal, nil
}

func (s *goalService) MarkComplete(ctx context.Context, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	goal.IsCompleted = true
	goal.LastUpdatedAt = time.Now().UTC()
	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "failed to mark goal complete", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to mark goal complete: %w", err)
	}
	return goal, nil
}
