package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/core/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// MockCategoryRepository is a mock type for the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByNameAndType(ctx context.Context, name string, categoryType domain.CategoryType) (*domain.Category, error) {
	args := m.Called(ctx, name, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	suite.mockRepo.On("FindCategoryByNameAndType", ctx, "Books", domain.CategoryExpense).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name: "Books",
		Type: domain.CategoryExpense,
	})

	suite.Require().NoError(err)
	suite.NotEmpty(category.CategoryID)
	suite.False(category.IsDefault)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateNameAndType() {
	ctx := context.Background()
	existing := &domain.Category{CategoryID: "cat-1", Name: "Books", Type: domain.CategoryExpense}
	suite.mockRepo.On("FindCategoryByNameAndType", ctx, "Books", domain.CategoryExpense).
		Return(existing, nil).Once()

	_, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name: "Books",
		Type: domain.CategoryExpense,
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_RejectsUnknownType() {
	_, err := suite.service.CreateCategory(context.Background(), dto.CreateCategoryRequest{
		Name: "Books",
		Type: "hobby",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_DefaultIsImmutable() {
	ctx := context.Background()
	category := &domain.Category{CategoryID: "cat-1", Name: "Groceries", Type: domain.CategoryExpense, IsDefault: true}
	suite.mockRepo.On("FindCategoryByID", ctx, "cat-1").Return(category, nil).Once()

	newName := "Food"
	_, err := suite.service.UpdateCategory(ctx, "cat-1", dto.UpdateCategoryRequest{Name: &newName})

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_DefaultIsImmutable() {
	ctx := context.Background()
	category := &domain.Category{CategoryID: "cat-1", Name: "Groceries", Type: domain.CategoryExpense, IsDefault: true}
	suite.mockRepo.On("FindCategoryByID", ctx, "cat-1").Return(category, nil).Once()

	err := suite.service.DeleteCategory(ctx, "cat-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_CustomCategory() {
	ctx := context.Background()
	category := &domain.Category{CategoryID: "cat-2", Name: "Books", Type: domain.CategoryExpense}
	suite.mockRepo.On("FindCategoryByID", ctx, "cat-2").Return(category, nil).Once()
	suite.mockRepo.On("DeleteCategory", ctx, "cat-2").Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, "cat-2")

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestFindOrCreate_ReturnsExisting() {
	ctx := context.Background()
	existing := &domain.Category{CategoryID: "cat-payments", Name: "Client Payments", Type: domain.CategoryIncome}
	suite.mockRepo.On("FindCategoryByNameAndType", ctx, "Client Payments", domain.CategoryIncome).
		Return(existing, nil).Once()

	category, err := suite.service.FindOrCreate(ctx, "Client Payments", domain.CategoryIncome)

	suite.Require().NoError(err)
	suite.Equal("cat-payments", category.CategoryID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestFindOrCreate_CreatesOnFirstUse() {
	ctx := context.Background()
	suite.mockRepo.On("FindCategoryByNameAndType", ctx, "Client Payments", domain.CategoryIncome).
		Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.Category
	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Category)
		}).Return(nil).Once()

	category, err := suite.service.FindOrCreate(ctx, "Client Payments", domain.CategoryIncome)

	suite.Require().NoError(err)
	suite.NotEmpty(category.CategoryID)
	suite.Equal("Client Payments", saved.Name)
	suite.Equal(domain.CategoryIncome, saved.Type)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
