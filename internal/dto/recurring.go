package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// CreateRecurringRequest defines the data needed to create a recurring
// template. Transfers are not supported as recurring.
type CreateRecurringRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	CategoryID  string                 `json:"categoryID"`
	Description string                 `json:"description" binding:"required"`
	Frequency   domain.Frequency       `json:"frequency" binding:"required,oneof=daily weekly biweekly monthly yearly"`
	NextDueDate time.Time              `json:"nextDueDate" binding:"required"`
	Notes       string                 `json:"notes"`
}

// UpdateRecurringRequest covers the editable template fields.
type UpdateRecurringRequest struct {
	Amount      *decimal.Decimal  `json:"amount"`
	CategoryID  *string           `json:"categoryID"`
	Description *string           `json:"description"`
	Frequency   *domain.Frequency `json:"frequency"`
	NextDueDate *time.Time        `json:"nextDueDate"`
	IsActive    *bool             `json:"isActive"`
	Notes       *string           `json:"notes"`
}

// RecurringResponse mirrors domain.RecurringTransaction plus the derived due
// metadata.
type RecurringResponse struct {
	RecurringID       string                 `json:"recurringID"`
	AccountID         string                 `json:"accountID"`
	Type              domain.TransactionType `json:"type"`
	Amount            decimal.Decimal        `json:"amount"`
	CategoryID        string                 `json:"categoryID,omitempty"`
	Description       string                 `json:"description"`
	Frequency         domain.Frequency       `json:"frequency"`
	NextDueDate       time.Time              `json:"nextDueDate"`
	LastProcessedDate *time.Time             `json:"lastProcessedDate,omitempty"`
	IsActive          bool                   `json:"isActive"`
	Notes             string                 `json:"notes,omitempty"`
	DaysUntilDue      int                    `json:"daysUntilDue"`
	IsOverdue         bool                   `json:"isOverdue"`
	IsDueToday        bool                   `json:"isDueToday"`
	IsDueSoon         bool                   `json:"isDueSoon"`
}

// ToRecurringResponse converts a template to its response DTO, deriving the
// due metadata relative to now.
func ToRecurringResponse(r *domain.RecurringTransaction, now time.Time) RecurringResponse {
	due := r.DueStatusAt(now)
	return RecurringResponse{
		RecurringID:       r.RecurringID,
		AccountID:         r.AccountID,
		Type:              r.Type,
		Amount:            r.Amount,
		CategoryID:        r.CategoryID,
		Description:       r.Description,
		Frequency:         r.Frequency,
		NextDueDate:       r.NextDueDate,
		LastProcessedDate: r.LastProcessedDate,
		IsActive:          r.IsActive,
		Notes:             r.Notes,
		DaysUntilDue:      due.DaysUntilDue,
		IsOverdue:         due.IsOverdue,
		IsDueToday:        due.IsDueToday,
		IsDueSoon:         due.IsDueSoon,
	}
}

// ToRecurringResponses converts a slice of templates.
func ToRecurringResponses(templates []domain.RecurringTransaction, now time.Time) []RecurringResponse {
	res := make([]RecurringResponse, len(templates))
	for i := range templates {
		res[i] = ToRecurringResponse(&templates[i], now)
	}
	return res
}

// SkipRecurringResponse reports the advanced due date after a skip.
type SkipRecurringResponse struct {
	RecurringID string    `json:"recurringID"`
	NextDueDate time.Time `json:"nextDueDate"`
}

// RecurringProjectionResponse is the normalized monthly summary of active
// templates.
type RecurringProjectionResponse struct {
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense"`
	MonthlyNet     decimal.Decimal `json:"monthlyNet"`
}
