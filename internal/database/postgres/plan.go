package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/repository"
)

type planRepository struct {
	db *pgxpool.Pool
}

// NewPlanRepository creates a new PostgreSQL planned-meal repository
func NewPlanRepository(db *pgxpool.Pool) repository.Plan {
	return &planRepository{db: db}
}

const plannedMealColumns = `
	planned_meal_id, user_id, meal_date, meal_type, recipe_id,
	ingredient_overrides, is_eaten, created_at`

// mealTypeOrder sorts rows into serving order within a day.
const mealTypeOrder = `
	CASE meal_type WHEN 'breakfast' THEN 0 WHEN 'lunch' THEN 1 ELSE 2 END`

// InsertPlannedMeal inserts one row. A uniqueness violation on
// (user, date, meal type) is surfaced as domain.ErrPlanSlotExists so batch
// generation can treat it as already-generated.
func (r *planRepository) InsertPlannedMeal(ctx context.Context, meal *domain.PlannedMeal) (*domain.PlannedMeal, error) {
	userUUID, err := parseUserUUID(meal.UserID)
	if err != nil {
		return nil, err
	}

	overridesJSON, err := marshalOverrides(meal.Overrides)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO planned_meals (user_id, meal_date, meal_type, recipe_id, ingredient_overrides, is_eaten)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING planned_meal_id, created_at
	`

	stored := *meal
	var id uuid.UUID
	err = r.db.QueryRow(ctx, query,
		userUUID, meal.MealDate, string(meal.MealType), meal.RecipeID, overridesJSON, meal.IsEaten,
	).Scan(&id, &stored.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s %s", domain.ErrPlanSlotExists, meal.MealDate.Format(time.DateOnly), meal.MealType)
		}
		return nil, fmt.Errorf("failed to insert planned meal: %w", err)
	}
	stored.ID = id.String()

	return &stored, nil
}

// GetPlannedMeal loads a single row by id
func (r *planRepository) GetPlannedMeal(ctx context.Context, id string) (*domain.PlannedMeal, error) {
	query := `SELECT ` + plannedMealColumns + ` FROM planned_meals WHERE planned_meal_id = $1`
	return scanPlannedMeal(r.db.QueryRow(ctx, query, id))
}

// QueryPlannedMeals returns the user's rows in the inclusive date range,
// ordered by date then serving order
func (r *planRepository) QueryPlannedMeals(ctx context.Context, userID string, start, end time.Time) ([]domain.PlannedMeal, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + plannedMealColumns + `
		FROM planned_meals
		WHERE user_id = $1 AND meal_date BETWEEN $2 AND $3
		ORDER BY meal_date, ` + mealTypeOrder

	rows, err := r.db.Query(ctx, query, userUUID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query planned meals: %w", err)
	}
	defer rows.Close()

	var meals []domain.PlannedMeal
	for rows.Next() {
		meal, err := scanPlannedMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planned meal: %w", err)
		}
		meals = append(meals, *meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read planned meals: %w", err)
	}

	return meals, nil
}

// CountPlannedMeals counts the user's rows in the inclusive date range
func (r *planRepository) CountPlannedMeals(ctx context.Context, userID string, start, end time.Time) (int, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	query := `
		SELECT COUNT(*) FROM planned_meals
		WHERE user_id = $1 AND meal_date BETWEEN $2 AND $3
	`

	var count int
	if err := r.db.QueryRow(ctx, query, userUUID, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count planned meals: %w", err)
	}

	return count, nil
}

// BeginTx starts a transaction for single-row read-modify-write operations
func (r *planRepository) BeginTx(ctx context.Context) (repository.PlanTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &planTx{tx: tx}, nil
}

type planTx struct {
	tx pgx.Tx
}

// GetPlannedMealForUpdate loads the row under a row-level lock so a
// concurrent edit cannot invalidate the calorie baseline mid-validation.
func (t *planTx) GetPlannedMealForUpdate(ctx context.Context, id string) (*domain.PlannedMeal, error) {
	query := `SELECT ` + plannedMealColumns + ` FROM planned_meals WHERE planned_meal_id = $1 FOR UPDATE`
	return scanPlannedMeal(t.tx.QueryRow(ctx, query, id))
}

// UpdatePlannedMeal applies a patch and returns the updated row
func (t *planTx) UpdatePlannedMeal(ctx context.Context, id string, patch domain.PlannedMealPatch) (*domain.PlannedMeal, error) {
	overridesJSON, err := marshalOverrides(patch.Overrides)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE planned_meals
		SET recipe_id = $1, ingredient_overrides = $2
		WHERE planned_meal_id = $3
		RETURNING ` + plannedMealColumns

	return scanPlannedMeal(t.tx.QueryRow(ctx, query, patch.RecipeID, overridesJSON, id))
}

func (t *planTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback is a no-op after commit so it can be deferred unconditionally.
func (t *planTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func scanPlannedMeal(row pgx.Row) (*domain.PlannedMeal, error) {
	var meal domain.PlannedMeal
	var id, userID uuid.UUID
	var mealType string
	var overridesJSON []byte

	err := row.Scan(&id, &userID, &meal.MealDate, &mealType, &meal.RecipeID, &overridesJSON, &meal.IsEaten, &meal.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlannedMealNotFound
		}
		return nil, fmt.Errorf("failed to scan planned meal: %w", err)
	}

	meal.ID = id.String()
	meal.UserID = userID.String()
	meal.MealType = domain.MealType(mealType)

	meal.Overrides, err = unmarshalOverrides(overridesJSON)
	if err != nil {
		return nil, err
	}

	return &meal, nil
}
