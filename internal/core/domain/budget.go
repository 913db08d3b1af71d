package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the reset cadence of a budget.
type BudgetPeriod string

const (
	BudgetWeekly  BudgetPeriod = "weekly"
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

// Valid reports whether p is a known budget period.
func (p BudgetPeriod) Valid() bool {
	return p == BudgetWeekly || p == BudgetMonthly || p == BudgetYearly
}

// Budget caps spending for one category. At most one budget exists per
// category, enforced at creation.
type Budget struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}

// PeriodStart returns the instant the current tracking window began:
// weekly budgets reset on the most recent Monday 00:00, monthly on the 1st of
// the current month, yearly on the 1st of the start date's month, rolled
// forward each year. Note a monthly budget created mid-month still tracks from
// the 1st, not from its start date.
func (b Budget) PeriodStart(now time.Time) time.Time {
	switch b.Period {
	case BudgetWeekly:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		monday := now.AddDate(0, 0, -daysSinceMonday)
		return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
	case BudgetMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case BudgetYearly:
		anchor := time.Date(now.Year(), b.StartDate.Month(), 1, 0, 0, 0, 0, now.Location())
		if anchor.After(now) {
			anchor = anchor.AddDate(-1, 0, 0)
		}
		return anchor
	}
	return now
}

// BudgetProgress pairs a budget with its spend for the current period.
// Computed at read time, never persisted.
type BudgetProgress struct {
	Budget      Budget          `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	PeriodStart time.Time       `json:"periodStart"`
}
