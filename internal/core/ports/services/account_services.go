package services

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// AccountSvcFacade manages accounts. Balance writes are limited to the
// explicit starting-balance edit; everything else is the ledger's job.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	SetStartingBalance(ctx context.Context, accountID string, req dto.SetBalanceRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
}
