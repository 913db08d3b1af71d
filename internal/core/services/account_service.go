package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade

	validateCurrency bool
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithCurrencyValidation makes account creation reject currency codes unknown
// to the ISO 4217 table.
func WithCurrencyValidation() AccountServiceOption {
	return func(s *accountService) {
		s.validateCurrency = true
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.Type)
	}
	if s.validateCurrency {
		if money.GetCurrency(req.CurrencyCode) == nil {
			return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, req.CurrencyCode)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:         uuid.NewString(),
		Name:              req.Name,
		Type:              req.Type,
		Balance:           req.Balance,
		CurrencyCode:      req.CurrencyCode,
		IsBusinessAccount: req.IsBusinessAccount,
		Color:             req.Color,
		Icon:              req.Icon,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "account created",
		slog.String("account_id", account.AccountID),
		slog.String("type", string(account.Type)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsBusinessAccount != nil {
		account.IsBusinessAccount = *req.IsBusinessAccount
	}
	if req.Color != nil {
		account.Color = *req.Color
	}
	if req.Icon != nil {
		account.Icon = *req.Icon
	}
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// SetStartingBalance is the one sanctioned direct balance write. Everything
// else goes through transaction postings.
func (s *accountService) SetStartingBalance(ctx context.Context, accountID string, req dto.SetBalanceRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.accountRepo.SetAccountBalance(ctx, accountID, req.Balance, now); err != nil {
		s.LogError(ctx, err, "failed to set account balance", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to set account balance: %w", err)
	}

	s.LogInfo(ctx, "account balance overwritten",
		slog.String("account_id", accountID),
		slog.String("old_balance", account.Balance.String()),
		slog.String("new_balance", req.Balance.String()))

	account.Balance = req.Balance
	account.LastUpdatedAt = now
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "failed to delete account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}
	s.LogInfo(ctx, "account deleted", slog.String("account_id", accountID))
	return nil
}
