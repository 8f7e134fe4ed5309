package nutrition

import (
	"math"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// TotalsTolerance is the rounding slack allowed between a recipe's aggregate
// totals and the sum of its ingredient contributions at base amount.
const TotalsTolerance = 0.5

// ComputeMacros calculates the nutrition totals of one meal instance.
// The effective amount of each ingredient is its override amount when one
// exists, otherwise its base amount; every macro scales linearly with
// effective/base. Pure function: inputs are never mutated.
func ComputeMacros(recipe *domain.Recipe, overrides []domain.IngredientOverride) domain.Macros {
	var total domain.Macros
	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		scale := 1.0
		if amount, ok := overrideAmount(overrides, ing.IngredientID); ok {
			scale = amount / ing.BaseAmount
		}
		total = total.Add(ing.Macros.Scale(scale))
	}
	return total
}

// VerifyTotals checks the catalog invariant that a recipe's aggregate totals
// reproduce the sum of its ingredient contributions at base amount.
func VerifyTotals(recipe *domain.Recipe) bool {
	sum := ComputeMacros(recipe, nil)
	return math.Abs(sum.Calories-recipe.Totals.Calories) <= TotalsTolerance &&
		math.Abs(sum.ProteinG-recipe.Totals.ProteinG) <= TotalsTolerance &&
		math.Abs(sum.CarbsG-recipe.Totals.CarbsG) <= TotalsTolerance &&
		math.Abs(sum.FatsG-recipe.Totals.FatsG) <= TotalsTolerance
}

func overrideAmount(overrides []domain.IngredientOverride, ingredientID int) (float64, bool) {
	for _, o := range overrides {
		if o.IngredientID == ingredientID {
			return o.NewAmount, true
		}
	}
	return 0, false
}
