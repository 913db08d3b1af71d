package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// ReportRangeParams bounds a reporting query.
type ReportRangeParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// CashflowResponse is the per-month aggregation of the transaction stream.
type CashflowResponse struct {
	Rows         []domain.CashflowRow `json:"rows"`
	TotalIncome  decimal.Decimal      `json:"totalIncome"`
	TotalExpense decimal.Decimal      `json:"totalExpense"`
	TotalNet     decimal.Decimal      `json:"totalNet"`
}

// BusinessExpenseResponse aggregates business-flagged expenses by category.
type BusinessExpenseResponse struct {
	Rows  []domain.CategorySpendRow `json:"rows"`
	Total decimal.Decimal           `json:"total"`
}
