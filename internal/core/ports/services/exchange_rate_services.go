package services

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// ExchangeRateSvcFacade is the boundary to the manually fed exchange-rate
// collaborator. GetRate returns ErrNotFound when no rate is known for the
// pair; callers treat that as "no conversion available" and prompt for a
// manual override.
type ExchangeRateSvcFacade interface {
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
	GetRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}
