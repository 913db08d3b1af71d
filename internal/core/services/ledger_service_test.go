package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/core/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, deltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, deltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, transactionID, deltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) SumExpensesByCategorySince(ctx context.Context, categoryID string, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, categoryID, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, accountID, balance, now)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, deltas, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockAccountRepo)
}

func bankAccount(id string, balance decimal.Decimal) domain.Account {
	return domain.Account{
		AccountID:    id,
		Name:         id,
		Type:         domain.AccountBank,
		Balance:      balance,
		CurrencyCode: "USD",
	}
}

func creditCardAccount(id string, balance decimal.Decimal) domain.Account {
	acc := bankAccount(id, balance)
	acc.Type = domain.AccountCreditCard
	return acc
}

// --- Validation Tests ---

func (suite *LedgerServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	req := dto.CreateTransactionRequest{
		AccountID:   "acc-1",
		Type:        domain.TransactionExpense,
		Amount:      decimal.Zero,
		Date:        time.Now(),
		Description: "zero amount",
	}

	_, err := suite.service.CreateTransaction(context.Background(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_RejectsUnknownType() {
	req := dto.CreateTransactionRequest{
		AccountID:   "acc-1",
		Type:        "refund",
		Amount:      decimal.NewFromInt(10),
		Date:        time.Now(),
		Description: "bad type",
	}

	_, err := suite.service.CreateTransaction(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_TransferRequiresDestination() {
	req := dto.CreateTransactionRequest{
		AccountID:   "acc-1",
		Type:        domain.TransactionTransfer,
		Amount:      decimal.NewFromInt(10),
		Date:        time.Now(),
		Description: "no destination",
	}

	_, err := suite.service.CreateTransaction(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "destination")
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_TransferRejectsSameAccount() {
	req := dto.CreateTransactionRequest{
		AccountID:   "acc-1",
		Type:        domain.TransactionTransfer,
		Amount:      decimal.NewFromInt(10),
		Date:        time.Now(),
		Description: "self transfer",
		ToAccountID: "acc-1",
	}

	_, err := suite.service.CreateTransaction(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_NonTransferRejectsDestination() {
	req := dto.CreateTransactionRequest{
		AccountID:   "acc-1",
		Type:        domain.TransactionExpense,
		Amount:      decimal.NewFromInt(10),
		Date:        time.Now(),
		Description: "stray destination",
		ToAccountID: "acc-2",
	}

	_, err := suite.service.CreateTransaction(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_MissingAccount() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-missing"}).
		Return(map[string]domain.Account{}, nil).Once()

	req := dto.CreateTransactionRequest{
		AccountID:   "acc-missing",
		Type:        domain.TransactionIncome,
		Amount:      decimal.NewFromInt(10),
		Date:        time.Now(),
		Description: "orphan",
	}

	_, err := suite.service.CreateTransaction(ctx, req)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_TransferCurrencyMismatch() {
	ctx := context.Background()
	source := bankAccount("acc-usd", decimal.NewFromInt(100))
	dest := bankAccount("acc-eur", decimal.Zero)
	dest.CurrencyCode = "EUR"

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-usd", "acc-eur"}).
		Return(map[string]domain.Account{"acc-usd": source, "acc-eur": dest}, nil).Once()

	req := dto.CreateTransactionRequest{
		AccountID:   "acc-usd",
		Type:        domain.TransactionTransfer,
		Amount:      decimal.NewFromInt(10),
		Date:        time.Now(),
		Description: "cross currency",
		ToAccountID: "acc-eur",
	}

	_, err := suite.service.CreateTransaction(ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "currency")
}

// --- Posting Tests ---

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ExpensePostsNegativeDelta() {
	ctx := context.Background()
	source := bankAccount("acc-1", decimal.NewFromInt(500))

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-1"}).
		Return(map[string]domain.Account{"acc-1": source}, nil).Once()

	var captured map[string]decimal.Decimal
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(map[string]decimal.Decimal)
		}).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		AccountID:   "acc-1",
		Type:        domain.TransactionExpense,
		Amount:      decimal.NewFromInt(50),
		Date:        time.Now(),
		Description: "groceries",
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Require().Len(captured, 1)
	suite.True(decimal.NewFromInt(-50).Equal(captured["acc-1"]))
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ExpenseOnCreditCardGrowsDebt() {
	ctx := context.Background()
	card := creditCardAccount("acc-cc", decimal.Zero)

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-cc"}).
		Return(map[string]domain.Account{"acc-cc": card}, nil).Once()

	var captured map[string]decimal.Decimal
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(map[string]decimal.Decimal)
		}).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		AccountID:   "acc-cc",
		Type:        domain.TransactionExpense,
		Amount:      decimal.NewFromInt(80),
		Date:        time.Now(),
		Description: "dinner on the card",
	}

	_, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(80).Equal(captured["acc-cc"]))
}

// fakeLedgerStore is an in-memory stand-in for both repositories, used by the
// lifecycle test below where mock call-by-call scripting would obscure the
// balance arithmetic under test.
type fakeLedgerStore struct {
	MockTransactionRepository
	MockAccountRepository
	balances map[string]decimal.Decimal
	types    map[string]domain.AccountType
	stored   map[string]domain.Transaction
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{
		balances: make(map[string]decimal.Decimal),
		types:    make(map[string]domain.AccountType),
		stored:   make(map[string]domain.Transaction),
	}
}

func (f *fakeLedgerStore) addAccount(id string, accType domain.AccountType, balance decimal.Decimal) {
	f.balances[id] = balance
	f.types[id] = accType
}

func (f *fakeLedgerStore) apply(deltas map[string]decimal.Decimal) {
	for id, d := range deltas {
		f.balances[id] = f.balances[id].Add(d)
	}
}

func (f *fakeLedgerStore) FindAccountsByIDs(_ context.Context, ids []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		if bal, ok := f.balances[id]; ok {
			acc := bankAccount(id, bal)
			acc.Type = f.types[id]
			out[id] = acc
		}
	}
	return out, nil
}

func (f *fakeLedgerStore) SaveTransaction(_ context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error {
	f.stored[txn.TransactionID] = txn
	f.apply(deltas)
	return nil
}

func (f *fakeLedgerStore) FindTransactionByID(_ context.Context, id string) (*domain.Transaction, error) {
	txn, ok := f.stored[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (f *fakeLedgerStore) DeleteTransaction(_ context.Context, id string, deltas map[string]decimal.Decimal) error {
	delete(f.stored, id)
	f.apply(deltas)
	return nil
}

// Full lifecycle over an in-memory balance sheet: post an expense and a
// transfer against two accounts, run a spend-then-pay-down cycle through a
// credit card, then delete everything and verify every balance is restored to
// its starting value.
func (suite *LedgerServiceTestSuite) TestPostAndReverseLifecycle() {
	ctx := context.Background()
	store := newFakeLedgerStore()
	store.addAccount("acc-a", domain.AccountBank, decimal.NewFromInt(500))
	store.addAccount("acc-c", domain.AccountBank, decimal.Zero)
	store.addAccount("acc-cc", domain.AccountCreditCard, decimal.Zero)
	svc := services.NewLedgerService(store, store)
	balances := store.balances

	expense, err := svc.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:   "acc-a",
		Type:        domain.TransactionExpense,
		Amount:      decimal.NewFromInt(50),
		Date:        time.Now(),
		Description: "supplies",
	})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(450).Equal(balances["acc-a"]))

	transfer, err := svc.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:   "acc-a",
		Type:        domain.TransactionTransfer,
		Amount:      decimal.NewFromInt(30),
		Date:        time.Now(),
		Description: "move to savings",
		ToAccountID: "acc-c",
	})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(420).Equal(balances["acc-a"]))
	suite.True(decimal.NewFromInt(30).Equal(balances["acc-c"]))

	// Card spend grows the debt balance.
	cardSpend, err := svc.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:   "acc-cc",
		Type:        domain.TransactionExpense,
		Amount:      decimal.NewFromInt(80),
		Date:        time.Now(),
		Description: "dinner on the card",
	})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(80).Equal(balances["acc-cc"]))

	// An inbound transfer pays the card down: source loses the amount, and
	// the card's owed balance shrinks rather than grows.
	payDown, err := svc.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:   "acc-a",
		Type:        domain.TransactionTransfer,
		Amount:      decimal.NewFromInt(80),
		Date:        time.Now(),
		Description: "card payment",
		ToAccountID: "acc-cc",
	})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(340).Equal(balances["acc-a"]))
	suite.True(decimal.Zero.Equal(balances["acc-cc"]))

	suite.Require().NoError(svc.DeleteTransaction(ctx, payDown.TransactionID))
	suite.True(decimal.NewFromInt(420).Equal(balances["acc-a"]))
	suite.True(decimal.NewFromInt(80).Equal(balances["acc-cc"]))

	suite.Require().NoError(svc.DeleteTransaction(ctx, cardSpend.TransactionID))
	suite.True(decimal.Zero.Equal(balances["acc-cc"]))

	suite.Require().NoError(svc.DeleteTransaction(ctx, transfer.TransactionID))
	suite.True(decimal.NewFromInt(450).Equal(balances["acc-a"]))
	suite.True(decimal.Zero.Equal(balances["acc-c"]))

	suite.Require().NoError(svc.DeleteTransaction(ctx, expense.TransactionID))
	suite.True(decimal.NewFromInt(500).Equal(balances["acc-a"]))
	suite.True(decimal.Zero.Equal(balances["acc-c"]))
	suite.True(decimal.Zero.Equal(balances["acc-cc"]))
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_SkipsDeletedAccounts() {
	ctx := context.Background()
	txn := &domain.Transaction{
		TransactionID: "txn-orphaned",
		AccountID:     "acc-src",
		Type:          domain.TransactionTransfer,
		Amount:        decimal.NewFromInt(30),
		ToAccountID:   "acc-gone",
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-orphaned").Return(txn, nil).Once()
	// Only the source still exists.
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-src", "acc-gone"}).
		Return(map[string]domain.Account{"acc-src": bankAccount("acc-src", decimal.NewFromInt(100))}, nil).Once()

	var captured map[string]decimal.Decimal
	suite.mockTxnRepo.On("DeleteTransaction", ctx, "txn-orphaned", mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(map[string]decimal.Decimal)
		}).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, "txn-orphaned")

	suite.Require().NoError(err)
	suite.Require().Len(captured, 1)
	// Source paid out 30, so the reversal restores 30.
	suite.True(decimal.NewFromInt(30).Equal(captured["acc-src"]))
}

// --- RecordIncome Tests ---

func (suite *LedgerServiceTestSuite) TestRecordIncome_AppliesIncomeRule() {
	ctx := context.Background()
	account := bankAccount("acc-biz", decimal.NewFromInt(1000))
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-biz").Return(&account, nil).Once()

	var captured map[string]decimal.Decimal
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(map[string]decimal.Decimal)
		}).Return(nil).Once()

	posted, err := suite.service.RecordIncome(ctx, domain.Transaction{
		AccountID:   "acc-biz",
		Type:        domain.TransactionExpense, // forced to income regardless
		Amount:      decimal.NewFromFloat(108.50),
		Description: "Payment for INV-00007",
		InvoiceID:   "inv-7",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionIncome, posted.Type)
	suite.NotEmpty(posted.TransactionID)
	suite.True(decimal.NewFromFloat(108.50).Equal(captured["acc-biz"]))
}

func (suite *LedgerServiceTestSuite) TestRecordIncome_RejectsNonPositiveAmount() {
	_, err := suite.service.RecordIncome(context.Background(), domain.Transaction{
		AccountID: "acc-biz",
		Amount:    decimal.NewFromInt(-5),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
