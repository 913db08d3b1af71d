package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// reportingService aggregates the transaction stream. Read-only.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Cashflow(ctx context.Context, from, to time.Time) (*dto.CashflowResponse, error) {
	rows, err := s.reportingRepo.GetCashflowData(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cashflow data: %w", err)
	}

	res := dto.CashflowResponse{
		Rows:         rows,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, r := range rows {
		res.TotalIncome = res.TotalIncome.Add(r.Income)
		res.TotalExpense = res.TotalExpense.Add(r.Expense)
	}
	res.TotalNet = res.TotalIncome.Sub(res.TotalExpense)
	return &res, nil
}

func (s *reportingService) BusinessExpenses(ctx context.Context, from, to time.Time) (*dto.BusinessExpenseResponse, error) {
	rows, err := s.reportingRepo.GetBusinessExpenseData(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business expense data: %w", err)
	}

	res := dto.BusinessExpenseResponse{
		Rows:  rows,
		Total: decimal.Zero,
	}
	for _, r := range rows {
		res.Total = res.Total.Add(r.Total)
	}
	return &res, nil
}
