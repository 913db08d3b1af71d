package domain

import "github.com/shopspring/decimal"

// CashflowRow is one month of aggregated transaction totals.
type CashflowRow struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// CategorySpendRow aggregates expense totals for one category.
type CategorySpendRow struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// RecurringProjection is the normalized per-month view of all active
// recurring templates.
type RecurringProjection struct {
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense"`
	MonthlyNet     decimal.Decimal `json:"monthlyNet"`
}
