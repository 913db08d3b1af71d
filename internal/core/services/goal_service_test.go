package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/core/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// MockGoalRepository is a mock type for the GoalRepository interface
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	args := m.Called(ctx, goalID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type GoalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockGoalRepository
	service  portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGoalRepository)
	suite.service = services.NewGoalService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SaveGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, dto.CreateGoalRequest{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(5000),
	})

	suite.Require().NoError(err)
	suite.NotEmpty(goal.GoalID)
	suite.True(goal.CurrentAmount.IsZero())
	suite.False(goal.IsCompleted)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_RejectsNonPositiveTarget() {
	_, err := suite.service.CreateGoal(context.Background(), dto.CreateGoalRequest{
		Name:         "Nothing",
		TargetAmount: decimal.Zero,
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GoalServiceTestSuite) TestAddContribution() {
	ctx := context.Background()
	goal := &domain.Goal{
		GoalID:        "g-1",
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(500),
	}
	suite.mockRepo.On("FindGoalByID", ctx, "g-1").Return(goal, nil).Once()

	var updated domain.Goal
	suite.mockRepo.On("UpdateGoal", ctx, mock.AnythingOfType("domain.Goal")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Goal)
		}).Return(nil).Once()

	result, err := suite.service.AddContribution(ctx, "g-1", dto.ContributeRequest{
		Amount: decimal.NewFromInt(300),
	})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(800).Equal(result.CurrentAmount))
	suite.False(updated.IsCompleted)
}

func (suite *GoalServiceTestSuite) TestAddContribution_ReachingTargetCompletes() {
	ctx := context.Background()
	goal := &domain.Goal{
		GoalID:        "g-1",
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(1900),
	}
	suite.mockRepo.On("FindGoalByID", ctx, "g-1").Return(goal, nil).Once()
	suite.mockRepo.On("UpdateGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	result, err := suite.service.AddContribution(ctx, "g-1", dto.ContributeRequest{
		Amount: decimal.NewFromInt(150),
	})

	suite.Require().NoError(err)
	suite.True(result.IsCompleted, "crossing the target marks the goal complete")
	suite.True(decimal.NewFromInt(2050).Equal(result.CurrentAmount))
}

func (suite *GoalServiceTestSuite) TestAddContribution_RejectsNonPositiveAmount() {
	_, err := suite.service.AddContribution(context.Background(), "g-1", dto.ContributeRequest{
		Amount: decimal.NewFromInt(-10),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindGoalByID", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestMarkComplete() {
	ctx := context.Background()
	goal := &domain.Goal{
		GoalID:        "g-1",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(100),
	}
	suite.mockRepo.On("FindGoalByID", ctx, "g-1").Return(goal, nil).Once()
	suite.mockRepo.On("UpdateGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	result, err := suite.service.MarkComplete(ctx, "g-1")

	suite.Require().NoError(err)
	suite.True(result.IsCompleted)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
