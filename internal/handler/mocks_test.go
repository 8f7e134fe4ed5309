package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/planner"
)

// MockPlannerService implements planner.Service for testing
type MockPlannerService struct {
	mock.Mock
}

func (m *MockPlannerService) BuildDayPlan(ctx context.Context, userID string, date time.Time) (*planner.DayPlan, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planner.DayPlan), args.Error(1)
}

func (m *MockPlannerService) GeneratePlan(ctx context.Context, userID string, startDate time.Time, days int) (*planner.GenerateResult, error) {
	args := m.Called(ctx, userID, startDate, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planner.GenerateResult), args.Error(1)
}

func (m *MockPlannerService) GetPlan(ctx context.Context, userID string, start, end time.Time) ([]domain.PlannedMeal, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlannedMeal), args.Error(1)
}

func (m *MockPlannerService) FindMissingDays(ctx context.Context, userID string, dates []time.Time) ([]time.Time, error) {
	args := m.Called(ctx, userID, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockPlannerService) CountExisting(ctx context.Context, userID string, start, end time.Time) (int, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Int(0), args.Error(1)
}

var _ planner.Service = (*MockPlannerService)(nil)

// MockSwapService implements swap.Service for testing
type MockSwapService struct {
	mock.Mock
}

func (m *MockSwapService) ValidateSwap(ctx context.Context, plannedMealID string, newRecipeID int) (*domain.PlannedMeal, error) {
	args := m.Called(ctx, plannedMealID, newRecipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedMeal), args.Error(1)
}

func (m *MockSwapService) ListReplacements(ctx context.Context, plannedMealID string) ([]domain.ReplacementCandidate, error) {
	args := m.Called(ctx, plannedMealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReplacementCandidate), args.Error(1)
}

// MockCatalogService implements catalog.Service for testing
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockCatalogService) QueryByMealType(ctx context.Context, mealType domain.MealType, band *domain.CalorieBand) ([]domain.Recipe, error) {
	args := m.Called(ctx, mealType, band)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockCatalogService) CacheLen() int {
	args := m.Called()
	return args.Int(0)
}
