package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// AccountRepository persists accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	// SetAccountBalance overwrites the balance directly. Reserved for the
	// explicit starting-balance edit; all other balance movement goes through
	// the ledger's posting path.
	SetAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountBalancePatcher is the transactional surface the transaction
// repository uses to lock and patch balances inside its own DB transaction.
type AccountBalancePatcher interface {
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines the plain and transactional account
// surfaces.
type AccountRepositoryFacade interface {
	AccountRepository
	AccountBalancePatcher
}
