package nutrition

import (
	"fmt"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// ValidateOverride checks a proposed ingredient override against its target
// recipe. No upper bound is enforced; a "too large a change" warning is a
// presentation concern, not engine logic.
func ValidateOverride(recipe *domain.Recipe, override domain.IngredientOverride) error {
	ing := recipe.Ingredient(override.IngredientID)
	if ing == nil {
		return fmt.Errorf("%w: ingredient %d on recipe %d", domain.ErrIngredientNotInRecipe, override.IngredientID, recipe.ID)
	}
	if !ing.IsScalable {
		return fmt.Errorf("%w: ingredient %d", domain.ErrIngredientNotScalable, override.IngredientID)
	}
	if override.NewAmount <= 0 {
		return fmt.Errorf("%w: got %v", domain.ErrAmountMustBePositive, override.NewAmount)
	}
	return nil
}

// ValidateOverrides validates each override in order and returns the first
// failure.
func ValidateOverrides(recipe *domain.Recipe, overrides []domain.IngredientOverride) error {
	for _, o := range overrides {
		if err := ValidateOverride(recipe, o); err != nil {
			return err
		}
	}
	return nil
}
