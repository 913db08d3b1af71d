package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/dto"
	"github.com/pocketledger/pocketledger/internal/handlers"
	"github.com/pocketledger/pocketledger/internal/platform/config"
)

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) SetStartingBalance(ctx context.Context, accountID string, req dto.SetBalanceRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite Setup ---

type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAccountService = new(MockAccountService)

	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
	})
}

func (suite *AccountHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func testAccount(id string) *domain.Account {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Account{
		AccountID:    id,
		Name:         "Checking",
		Type:         domain.AccountBank,
		Balance:      decimal.NewFromInt(500),
		CurrencyCode: "USD",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	account := testAccount("acc-1")
	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(account, nil).Once()

	rec := suite.performRequest(http.MethodPost, "/api/v1/accounts", gin.H{
		"name":         "Checking",
		"type":         "bank",
		"currencyCode": "USD",
	})

	suite.Equal(http.StatusCreated, rec.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal("$500.00", resp.BalanceDisplay)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingNameFailsBinding() {
	rec := suite.performRequest(http.MethodPost, "/api/v1/accounts", gin.H{
		"type":         "bank",
		"currencyCode": "USD",
	})

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, "acc-missing").
		Return(nil, fmt.Errorf("%w: account acc-missing", apperrors.ErrNotFound)).Once()

	rec := suite.performRequest(http.MethodGet, "/api/v1/accounts/acc-missing", nil)

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_PassesPagination() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, 5, 10).
		Return([]domain.Account{*testAccount("acc-1")}, nil).Once()

	rec := suite.performRequest(http.MethodGet, "/api/v1/accounts?limit=5&offset=10", nil)

	suite.Equal(http.StatusOK, rec.Code)

	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal("acc-1", resp.Accounts[0].AccountID)
}

func (suite *AccountHandlerTestSuite) TestSetBalance() {
	account := testAccount("acc-1")
	account.Balance = decimal.NewFromInt(250)
	suite.mockAccountService.On("SetStartingBalance", mock.Anything, "acc-1", mock.AnythingOfType("dto.SetBalanceRequest")).
		Return(account, nil).Once()

	rec := suite.performRequest(http.MethodPut, "/api/v1/accounts/acc-1/balance", gin.H{"balance": "250"})

	suite.Equal(http.StatusOK, rec.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.True(decimal.NewFromInt(250).Equal(resp.Balance))
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount() {
	suite.mockAccountService.On("DeleteAccount", mock.Anything, "acc-1").Return(nil).Once()

	rec := suite.performRequest(http.MethodDelete, "/api/v1/accounts/acc-1", nil)

	suite.Equal(http.StatusNoContent, rec.Code)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
