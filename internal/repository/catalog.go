package repository

import (
	"context"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// Catalog defines the interface for read-only recipe catalog access
type Catalog interface {
	// GetRecipe returns a recipe with its full ingredient list.
	// Returns domain.ErrRecipeNotFound when the id is unknown.
	GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error)

	// QueryByMealType returns recipes tagged with the meal type. A nil band
	// disables the calorie filter.
	QueryByMealType(ctx context.Context, mealType domain.MealType, band *domain.CalorieBand) ([]domain.Recipe, error)
}
