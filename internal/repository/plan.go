package repository

import (
	"context"
	"time"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// Plan defines the interface for planned-meal persistence
type Plan interface {
	// InsertPlannedMeal inserts one row and returns it with id and
	// created_at populated. A (user, date, meal type) uniqueness violation
	// is returned as domain.ErrPlanSlotExists.
	InsertPlannedMeal(ctx context.Context, meal *domain.PlannedMeal) (*domain.PlannedMeal, error)

	// GetPlannedMeal loads a single row by id.
	GetPlannedMeal(ctx context.Context, id string) (*domain.PlannedMeal, error)

	// QueryPlannedMeals returns all rows for the user whose date falls in
	// the inclusive range, ordered by date then meal type.
	QueryPlannedMeals(ctx context.Context, userID string, start, end time.Time) ([]domain.PlannedMeal, error)

	// CountPlannedMeals counts rows for the user in the inclusive range.
	CountPlannedMeals(ctx context.Context, userID string, start, end time.Time) (int, error)

	BeginTx(ctx context.Context) (PlanTx, error)
}

// PlanTx defines the transactional operations used by swap and override
// edits. GetPlannedMealForUpdate takes a row lock so the calorie baseline
// cannot go stale between validation and update.
type PlanTx interface {
	GetPlannedMealForUpdate(ctx context.Context, id string) (*domain.PlannedMeal, error)
	UpdatePlannedMeal(ctx context.Context, id string, patch domain.PlannedMealPatch) (*domain.PlannedMeal, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
