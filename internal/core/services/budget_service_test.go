package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/core/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// MockBudgetRepository is a mock type for the BudgetRepository interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetByCategoryID(ctx context.Context, categoryID string) (*domain.Budget, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	mockTxnRepo    *MockTransactionRepository
	service        portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockTxnRepo)
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	suite.mockBudgetRepo.On("FindBudgetByCategoryID", ctx, "cat-groceries").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	req := dto.CreateBudgetRequest{
		CategoryID: "cat-groceries",
		Amount:     decimal.NewFromInt(400),
		Period:     domain.BudgetMonthly,
		StartDate:  time.Now(),
	}

	budget, err := suite.service.CreateBudget(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(budget.BudgetID)
	suite.True(budget.IsActive)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_SecondBudgetForCategoryIsDuplicate() {
	ctx := context.Background()
	existing := &domain.Budget{BudgetID: "b-1", CategoryID: "cat-groceries"}
	suite.mockBudgetRepo.On("FindBudgetByCategoryID", ctx, "cat-groceries").
		Return(existing, nil).Once()

	req := dto.CreateBudgetRequest{
		CategoryID: "cat-groceries",
		Amount:     decimal.NewFromInt(400),
		Period:     domain.BudgetMonthly,
		StartDate:  time.Now(),
	}

	_, err := suite.service.CreateBudget(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_RejectsNonPositiveAmount() {
	req := dto.CreateBudgetRequest{
		CategoryID: "cat-groceries",
		Amount:     decimal.Zero,
		Period:     domain.BudgetMonthly,
		StartDate:  time.Now(),
	}

	_, err := suite.service.CreateBudget(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestGetProgress() {
	ctx := context.Background()
	budget := &domain.Budget{
		BudgetID:   "b-1",
		CategoryID: "cat-groceries",
		Amount:     decimal.NewFromInt(400),
		Period:     domain.BudgetMonthly,
		IsActive:   true,
	}
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, "b-1").Return(budget, nil).Once()
	suite.mockTxnRepo.On("SumExpensesByCategorySince", ctx, "cat-groceries", mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(100), nil).Once()

	progress, err := suite.service.GetProgress(ctx, "b-1")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(100).Equal(progress.Spent))
	suite.True(decimal.NewFromInt(300).Equal(progress.Remaining))
	suite.True(decimal.NewFromInt(25).Equal(progress.PercentUsed))

	// Monthly window starts on the 1st of the current month.
	now := time.Now().UTC()
	suite.Equal(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), progress.PeriodStart)
}

func (suite *BudgetServiceTestSuite) TestListProgress_SkipsInactiveBudgets() {
	ctx := context.Background()
	budgets := []domain.Budget{
		{BudgetID: "b-1", CategoryID: "cat-a", Amount: decimal.NewFromInt(100), Period: domain.BudgetMonthly, IsActive: true},
		{BudgetID: "b-2", CategoryID: "cat-b", Amount: decimal.NewFromInt(200), Period: domain.BudgetMonthly, IsActive: false},
	}
	suite.mockBudgetRepo.On("ListBudgets", ctx).Return(budgets, nil).Once()
	suite.mockTxnRepo.On("SumExpensesByCategorySince", ctx, "cat-a", mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(40), nil).Once()

	progress, err := suite.service.ListProgress(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(progress, 1)
	suite.Equal("b-1", progress[0].Budget.BudgetID)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SumExpensesByCategorySince", ctx, "cat-b", mock.Anything)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
