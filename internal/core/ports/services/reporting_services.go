package services

import (
	"context"
	"time"

	"github.com/pocketledger/pocketledger/internal/dto"
)

// ReportingSvcFacade exposes read-only aggregation over the transaction
// stream.
type ReportingSvcFacade interface {
	Cashflow(ctx context.Context, from, to time.Time) (*dto.CashflowResponse, error)
	BusinessExpenses(ctx context.Context, from, to time.Time) (*dto.BusinessExpenseResponse, error)
}
