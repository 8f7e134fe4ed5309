package planner

import (
	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/nutrition"
)

// slotSelection pairs a meal slot with its selected recipe.
type slotSelection struct {
	mealType domain.MealType
	recipe   *domain.Recipe
}

// optimizeDay decides whether scaling is required for a fully selected day
// and, if so, computes per-slot ingredient overrides. Scalable ingredients
// shrink by a single proportional factor; non-scalable ingredients are left
// untouched, so the exact target may be unreachable and the achieved totals
// are reported alongside the target for the caller to judge.
//
// The factor is computed against the scalable calorie mass:
//
//	f = (target - nonScalableCalories) / scalableCalories
//
// clamped to [MinScaleFactor, 1]. When every ingredient is scalable this
// reduces to target/dayTotal. The floor keeps every amount strictly positive.
func optimizeDay(selections []slotSelection, targetCalories float64) (overrides map[domain.MealType][]domain.IngredientOverride, achieved domain.Macros, scaled bool) {
	var dayTotal domain.Macros
	var scalableCalories float64
	for _, sel := range selections {
		dayTotal = dayTotal.Add(nutrition.ComputeMacros(sel.recipe, nil))
		for _, ing := range sel.recipe.Ingredients {
			if ing.IsScalable {
				scalableCalories += ing.Macros.Calories
			}
		}
	}

	if dayTotal.Calories <= targetCalories || scalableCalories == 0 {
		return nil, dayTotal, false
	}

	f := shrinkFactor(targetCalories, dayTotal.Calories, scalableCalories)
	if f >= 1 {
		return nil, dayTotal, false
	}

	overrides = make(map[domain.MealType][]domain.IngredientOverride, len(selections))
	for _, sel := range selections {
		var slotOverrides []domain.IngredientOverride
		for _, ing := range sel.recipe.Ingredients {
			if !ing.IsScalable {
				continue
			}
			slotOverrides = append(slotOverrides, domain.IngredientOverride{
				IngredientID: ing.IngredientID,
				NewAmount:    ing.BaseAmount * f,
			})
		}
		if slotOverrides != nil {
			overrides[sel.mealType] = slotOverrides
		}
		achieved = achieved.Add(nutrition.ComputeMacros(sel.recipe, slotOverrides))
	}

	return overrides, achieved, true
}

// shrinkFactor solves for the proportional factor that pulls the day's
// calories down to target, bounded so amounts stay strictly positive.
func shrinkFactor(target, dayTotal, scalableCalories float64) float64 {
	nonScalable := dayTotal - scalableCalories
	f := (target - nonScalable) / scalableCalories
	if f < MinScaleFactor {
		return MinScaleFactor
	}
	if f > 1 {
		return 1
	}
	return f
}
