package swap

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/platewise/mealplan-engine/internal/catalog"
	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/logger"
	"github.com/platewise/mealplan-engine/internal/nutrition"
	"github.com/platewise/mealplan-engine/internal/repository"
)

// CalorieTolerance is the acceptance window for a substitution: the candidate
// must land within ±15% of the meal's current calories.
const CalorieTolerance = 0.15

// Service defines the interface for recipe substitution on planned meals
type Service interface {
	// ValidateSwap replaces the meal's recipe when the candidate shares the
	// slot's meal type and sits inside the calorie tolerance band. On
	// success the ingredient overrides are reset: scaling decisions never
	// carry across a swap. IsEaten is left untouched.
	ValidateSwap(ctx context.Context, plannedMealID string, newRecipeID int) (*domain.PlannedMeal, error)

	// ListReplacements returns every catalog recipe sharing the meal type,
	// excluding the current recipe, sorted by absolute calorie distance.
	// The tolerance filter is not pre-applied; ValidateSwap re-enforces it
	// at swap time regardless of what was listed.
	ListReplacements(ctx context.Context, plannedMealID string) ([]domain.ReplacementCandidate, error)
}

type service struct {
	catalog  catalog.Service
	planRepo repository.Plan
}

// NewService creates a new swap service
func NewService(catalogSvc catalog.Service, planRepo repository.Plan) Service {
	return &service{
		catalog:  catalogSvc,
		planRepo: planRepo,
	}
}

func (s *service) ValidateSwap(ctx context.Context, plannedMealID string, newRecipeID int) (*domain.PlannedMeal, error) {
	log := logger.FromContext(ctx)
	log.Info("ValidateSwap called", "planned_meal_id", plannedMealID, "new_recipe_id", newRecipeID)

	tx, err := s.planRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Re-read under a row lock so a racing edit cannot leave us validating
	// against a stale calorie baseline.
	meal, err := tx.GetPlannedMealForUpdate(ctx, plannedMealID)
	if err != nil {
		return nil, fmt.Errorf("failed to load planned meal: %w", err)
	}

	originalCalories, err := s.currentCalories(ctx, meal)
	if err != nil {
		return nil, err
	}

	candidate, err := s.catalog.GetRecipe(ctx, newRecipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate recipe: %w", err)
	}

	if !candidate.HasMealType(meal.MealType) {
		return nil, fmt.Errorf("%w: recipe %d is not a %s recipe", domain.ErrMealTypeMismatch, newRecipeID, meal.MealType)
	}

	diff := math.Abs(candidate.Totals.Calories-originalCalories) / originalCalories
	if diff > CalorieTolerance {
		return nil, fmt.Errorf("%w: %.1f%% from %.0f kcal", domain.ErrCalorieToleranceExceeded, diff*100, originalCalories)
	}

	updated, err := tx.UpdatePlannedMeal(ctx, plannedMealID, domain.PlannedMealPatch{
		RecipeID:  newRecipeID,
		Overrides: nil,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update planned meal: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Meal swapped", "planned_meal_id", plannedMealID, "recipe_id", newRecipeID, "calorie_diff_pct", diff*100)
	return updated, nil
}

func (s *service) ListReplacements(ctx context.Context, plannedMealID string) ([]domain.ReplacementCandidate, error) {
	meal, err := s.planRepo.GetPlannedMeal(ctx, plannedMealID)
	if err != nil {
		return nil, fmt.Errorf("failed to load planned meal: %w", err)
	}

	originalCalories, err := s.currentCalories(ctx, meal)
	if err != nil {
		return nil, err
	}

	recipes, err := s.catalog.QueryByMealType(ctx, meal.MealType, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query replacements: %w", err)
	}

	candidates := make([]domain.ReplacementCandidate, 0, len(recipes))
	for _, r := range recipes {
		if r.ID == meal.RecipeID {
			continue
		}
		candidates = append(candidates, domain.ReplacementCandidate{
			Recipe:      r,
			CalorieDiff: r.Totals.Calories - originalCalories,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return math.Abs(candidates[i].CalorieDiff) < math.Abs(candidates[j].CalorieDiff)
	})

	return candidates, nil
}

// currentCalories computes the meal's calories with its stored overrides
// applied, which is the baseline every tolerance check runs against.
func (s *service) currentCalories(ctx context.Context, meal *domain.PlannedMeal) (float64, error) {
	recipe, err := s.catalog.GetRecipe(ctx, meal.RecipeID)
	if err != nil {
		return 0, fmt.Errorf("failed to load current recipe: %w", err)
	}
	return nutrition.ComputeMacros(recipe, meal.Overrides).Calories, nil
}
