package services

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// GoalSvcFacade manages savings goals. Progress only moves through explicit
// contributions, never from the transaction stream.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error)
	GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string) error

	AddContribution(ctx context.Context, goalID string, req dto.ContributeRequest) (*domain.Goal, error)
	MarkComplete(ctx context.Context, goalID string) (*domain.Goal, error)
}
