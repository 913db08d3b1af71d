package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// CreateBudgetRequest defines the data needed to create a budget. One budget
// per category.
type CreateBudgetRequest struct {
	CategoryID string              `json:"categoryID" binding:"required"`
	Amount     decimal.Decimal     `json:"amount" binding:"required"`
	Period     domain.BudgetPeriod `json:"period" binding:"required,oneof=weekly monthly yearly"`
	StartDate  time.Time           `json:"startDate" binding:"required"`
}

// UpdateBudgetRequest covers the editable budget fields.
type UpdateBudgetRequest struct {
	Amount   *decimal.Decimal     `json:"amount"`
	Period   *domain.BudgetPeriod `json:"period"`
	IsActive *bool                `json:"isActive"`
}

// BudgetResponse mirrors domain.Budget.
type BudgetResponse struct {
	BudgetID   string              `json:"budgetID"`
	CategoryID string              `json:"categoryID"`
	Amount     decimal.Decimal     `json:"amount"`
	Period     domain.BudgetPeriod `json:"period"`
	StartDate  time.Time           `json:"startDate"`
	IsActive   bool                `json:"isActive"`
}

// BudgetProgressResponse pairs a budget with its current-period spend.
type BudgetProgressResponse struct {
	Budget      BudgetResponse  `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	PeriodStart time.Time       `json:"periodStart"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Period:     b.Period,
		StartDate:  b.StartDate,
		IsActive:   b.IsActive,
	}
}

// ToBudgetProgressResponse converts a domain.BudgetProgress.
func ToBudgetProgressResponse(p *domain.BudgetProgress) BudgetProgressResponse {
	return BudgetProgressResponse{
		Budget:      ToBudgetResponse(&p.Budget),
		Spent:       p.Spent,
		Remaining:   p.Remaining,
		PercentUsed: p.PercentUsed,
		PeriodStart: p.PeriodStart,
	}
}
