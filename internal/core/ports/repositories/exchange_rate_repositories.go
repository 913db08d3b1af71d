package repositories

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// ExchangeRateRepository persists manually maintained exchange rates.
type ExchangeRateRepository interface {
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
	// FindExchangeRate returns the most recently effective rate for the pair,
	// or ErrNotFound when no rate is known.
	FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}
