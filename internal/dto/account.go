package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/utils"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name              string             `json:"name" binding:"required"`
	Type              domain.AccountType `json:"type" binding:"required,oneof=bank credit_card cash investment asset"`
	Balance           decimal.Decimal    `json:"balance"` // starting balance
	CurrencyCode      string             `json:"currencyCode" binding:"required,len=3"`
	IsBusinessAccount bool               `json:"isBusinessAccount"`
	Color             string             `json:"color"`
	Icon              string             `json:"icon"`
}

// UpdateAccountRequest defines the editable cosmetic fields of an account.
// Balance is deliberately absent: it moves through the ledger or through the
// dedicated starting-balance endpoint.
type UpdateAccountRequest struct {
	Name              *string `json:"name"`
	IsBusinessAccount *bool   `json:"isBusinessAccount"`
	Color             *string `json:"color"`
	Icon              *string `json:"icon"`
}

// SetBalanceRequest is the explicit starting-balance edit.
type SetBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// AccountResponse mirrors domain.Account.
type AccountResponse struct {
	AccountID         string             `json:"accountID"`
	Name              string             `json:"name"`
	Type              domain.AccountType `json:"type"`
	Balance           decimal.Decimal    `json:"balance"`
	BalanceDisplay    string             `json:"balanceDisplay"`
	CurrencyCode      string             `json:"currencyCode"`
	IsBusinessAccount bool               `json:"isBusinessAccount"`
	Color             string             `json:"color"`
	Icon              string             `json:"icon"`
	CreatedAt         time.Time          `json:"createdAt"`
	LastUpdatedAt     time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:         acc.AccountID,
		Name:              acc.Name,
		Type:              acc.Type,
		Balance:           acc.Balance,
		BalanceDisplay:    utils.FormatAmount(acc.Balance, acc.CurrencyCode),
		CurrencyCode:      acc.CurrencyCode,
		IsBusinessAccount: acc.IsBusinessAccount,
		Color:             acc.Color,
		Icon:              acc.Icon,
		CreatedAt:         acc.CreatedAt,
		LastUpdatedAt:     acc.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
