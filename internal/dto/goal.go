package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name            string          `json:"name" binding:"required"`
	TargetAmount    decimal.Decimal `json:"targetAmount" binding:"required"`
	TargetDate      *time.Time      `json:"targetDate"`
	LinkedAccountID string          `json:"linkedAccountID"`
}

// UpdateGoalRequest covers the editable goal fields. CurrentAmount is absent:
// it moves only through contributions.
type UpdateGoalRequest struct {
	Name            *string          `json:"name"`
	TargetAmount    *decimal.Decimal `json:"targetAmount"`
	TargetDate      *time.Time       `json:"targetDate"`
	LinkedAccountID *string          `json:"linkedAccountID"`
}

// ContributeRequest adds an explicit contribution to a goal.
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse mirrors domain.Goal plus derived progress figures.
type GoalResponse struct {
	GoalID          string          `json:"goalID"`
	Name            string          `json:"name"`
	TargetAmount    decimal.Decimal `json:"targetAmount"`
	CurrentAmount   decimal.Decimal `json:"currentAmount"`
	TargetDate      *time.Time      `json:"targetDate,omitempty"`
	LinkedAccountID string          `json:"linkedAccountID,omitempty"`
	IsCompleted     bool            `json:"isCompleted"`
	PercentComplete decimal.Decimal `json:"percentComplete"`
	MonthlyNeeded   decimal.Decimal `json:"monthlyNeeded"`
}

// ToGoalResponse converts a domain.Goal, deriving progress relative to now.
func ToGoalResponse(g *domain.Goal, now time.Time) GoalResponse {
	return GoalResponse{
		GoalID:          g.GoalID,
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		CurrentAmount:   g.CurrentAmount,
		TargetDate:      g.TargetDate,
		LinkedAccountID: g.LinkedAccountID,
		IsCompleted:     g.IsCompleted,
		PercentComplete: g.PercentComplete(),
		MonthlyNeeded:   g.MonthlyNeeded(now),
	}
}

// ToGoalResponses converts a slice of goals.
func ToGoalResponses(goals []domain.Goal, now time.Time) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i], now)
	}
	return res
}
