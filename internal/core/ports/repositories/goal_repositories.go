package repositories

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// GoalRepository persists savings goals.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, goalID string) error
}
