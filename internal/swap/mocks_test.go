package swap

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/repository"
)

// MockCatalog implements catalog.Service for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockCatalog) QueryByMealType(ctx context.Context, mealType domain.MealType, band *domain.CalorieBand) ([]domain.Recipe, error) {
	args := m.Called(ctx, mealType, band)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockCatalog) CacheLen() int {
	args := m.Called()
	return args.Int(0)
}

// MockPlanRepository implements repository.Plan for testing
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) InsertPlannedMeal(ctx context.Context, meal *domain.PlannedMeal) (*domain.PlannedMeal, error) {
	args := m.Called(ctx, meal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedMeal), args.Error(1)
}

func (m *MockPlanRepository) GetPlannedMeal(ctx context.Context, id string) (*domain.PlannedMeal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedMeal), args.Error(1)
}

func (m *MockPlanRepository) QueryPlannedMeals(ctx context.Context, userID string, start, end time.Time) ([]domain.PlannedMeal, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlannedMeal), args.Error(1)
}

func (m *MockPlanRepository) CountPlannedMeals(ctx context.Context, userID string, start, end time.Time) (int, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Int(0), args.Error(1)
}

func (m *MockPlanRepository) BeginTx(ctx context.Context) (repository.PlanTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PlanTx), args.Error(1)
}

var _ repository.Plan = (*MockPlanRepository)(nil)

// MockPlanTx implements repository.PlanTx for testing
type MockPlanTx struct {
	mock.Mock
}

func (m *MockPlanTx) GetPlannedMealForUpdate(ctx context.Context, id string) (*domain.PlannedMeal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedMeal), args.Error(1)
}

func (m *MockPlanTx) UpdatePlannedMeal(ctx context.Context, id string, patch domain.PlannedMealPatch) (*domain.PlannedMeal, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedMeal), args.Error(1)
}

func (m *MockPlanTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ repository.PlanTx = (*MockPlanTx)(nil)
