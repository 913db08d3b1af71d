package repositories

import (
	"context"
	"time"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// ReportingRepository runs read-only aggregation queries over the transaction
// stream. It never mutates state.
type ReportingRepository interface {
	GetCashflowData(ctx context.Context, from, to time.Time) ([]domain.CashflowRow, error)
	GetBusinessExpenseData(ctx context.Context, from, to time.Time) ([]domain.CategorySpendRow, error)
}
