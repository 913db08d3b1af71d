package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. CurrentAmount only moves through explicit
// contributions; linking an account is a reference for display, never an
// automatic sync.
type Goal struct {
	GoalID          string          `json:"goalID"`
	Name            string          `json:"name"`
	TargetAmount    decimal.Decimal `json:"targetAmount"`
	CurrentAmount   decimal.Decimal `json:"currentAmount"`
	TargetDate      *time.Time      `json:"targetDate"`
	LinkedAccountID string          `json:"linkedAccountID"`
	IsCompleted     bool            `json:"isCompleted"`
	AuditFields
}

// PercentComplete returns progress toward the target as a percentage.
func (g Goal) PercentComplete() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}

// MonthlyNeeded returns how much must be saved per month to hit the target by
// its date, or zero when there is no date, no shortfall, or the date has
// passed.
func (g Goal) MonthlyNeeded(now time.Time) decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if g.TargetDate == nil || remaining.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	days := daysBetween(now, *g.TargetDate)
	if days <= 0 {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(days)).Div(decimal.NewFromInt(30))
	return remaining.Div(months)
}
