package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account. There is no separate liability flag:
// the type itself determines how balances are interpreted.
type AccountType string

const (
	AccountBank       AccountType = "bank"
	AccountCreditCard AccountType = "credit_card"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
	AccountAsset      AccountType = "asset"
)

// IsLiability reports whether the account's balance represents money owed
// rather than money held. Only credit cards behave this way: a positive
// balance is outstanding debt.
func (t AccountType) IsLiability() bool {
	return t == AccountCreditCard
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountBank, AccountCreditCard, AccountCash, AccountInvestment, AccountAsset:
		return true
	}
	return false
}

// Account represents a financial account. Balance is mutated exclusively by
// the ledger engine, except for an explicit user edit of the starting balance.
type Account struct {
	AccountID         string          `json:"accountID"`
	Name              string          `json:"name"`
	Type              AccountType     `json:"type"`
	Balance           decimal.Decimal `json:"balance"`
	CurrencyCode      string          `json:"currencyCode"`
	IsBusinessAccount bool            `json:"isBusinessAccount"`
	Color             string          `json:"color"`
	Icon              string          `json:"icon"`
	AuditFields
}
