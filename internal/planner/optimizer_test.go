package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// mixedRecipe has a 400 kcal scalable main and a 100 kcal fixed portion.
func mixedRecipe(id int, mealType domain.MealType) domain.Recipe {
	return domain.Recipe{
		ID:        id,
		Name:      "mixed",
		MealTypes: []domain.MealType{mealType},
		Totals:    domain.Macros{Calories: 500},
		Ingredients: []domain.RecipeIngredient{
			{IngredientID: id*100 + 1, Name: "main", BaseAmount: 200, Unit: "g", IsScalable: true, Macros: domain.Macros{Calories: 400}},
			{IngredientID: id*100 + 2, Name: "dressing", BaseAmount: 15, Unit: "ml", IsScalable: false, Macros: domain.Macros{Calories: 100}},
		},
	}
}

func fullDaySelections(recipes ...domain.Recipe) []slotSelection {
	selections := make([]slotSelection, len(recipes))
	for i := range recipes {
		selections[i] = slotSelection{mealType: domain.AllMealTypes[i], recipe: &recipes[i]}
	}
	return selections
}

func TestOptimizeDay_UnderTargetStaysUnscaled(t *testing.T) {
	selections := fullDaySelections(
		scalableRecipe(1, 500, domain.MealTypeBreakfast),
		scalableRecipe(2, 500, domain.MealTypeLunch),
		scalableRecipe(3, 500, domain.MealTypeDinner),
	)

	overrides, achieved, scaled := optimizeDay(selections, 1800)

	assert.False(t, scaled)
	assert.Nil(t, overrides)
	assert.InDelta(t, 1500, achieved.Calories, 0.01)
}

func TestOptimizeDay_ScalesOnlyScalableIngredients(t *testing.T) {
	// 1500 kcal day, 1200 scalable, 300 fixed. Target 1350 needs the
	// scalable mass down to 1050, so f = 0.875.
	selections := fullDaySelections(
		mixedRecipe(1, domain.MealTypeBreakfast),
		mixedRecipe(2, domain.MealTypeLunch),
		mixedRecipe(3, domain.MealTypeDinner),
	)

	overrides, achieved, scaled := optimizeDay(selections, 1350)

	require.True(t, scaled)
	assert.InDelta(t, 1350, achieved.Calories, 0.01)
	for _, mt := range domain.AllMealTypes {
		require.Len(t, overrides[mt], 1, "one override per slot, fixed portion untouched")
		assert.InDelta(t, 200*0.875, overrides[mt][0].NewAmount, 0.0001)
	}
}

func TestOptimizeDay_FloorsShrinkFactor(t *testing.T) {
	selections := fullDaySelections(
		scalableRecipe(1, 700, domain.MealTypeBreakfast),
		scalableRecipe(2, 700, domain.MealTypeLunch),
		scalableRecipe(3, 700, domain.MealTypeDinner),
	)

	// An absurdly low target bottoms out at the minimum factor instead of
	// driving amounts to zero.
	overrides, achieved, scaled := optimizeDay(selections, 50)

	require.True(t, scaled)
	assert.InDelta(t, 2100*MinScaleFactor, achieved.Calories, 0.01)
	for _, mt := range domain.AllMealTypes {
		require.Len(t, overrides[mt], 1)
		assert.InDelta(t, 100*MinScaleFactor, overrides[mt][0].NewAmount, 0.0001)
		assert.Greater(t, overrides[mt][0].NewAmount, 0.0)
	}
}

func TestOptimizeDay_NothingScalable(t *testing.T) {
	fixed := domain.Recipe{
		ID:        1,
		Name:      "fixed",
		MealTypes: []domain.MealType{domain.MealTypeBreakfast},
		Totals:    domain.Macros{Calories: 800},
		Ingredients: []domain.RecipeIngredient{
			{IngredientID: 11, Name: "bar", BaseAmount: 1, Unit: "piece", IsScalable: false, Macros: domain.Macros{Calories: 800}},
		},
	}
	selections := fullDaySelections(fixed, fixed, fixed)

	overrides, achieved, scaled := optimizeDay(selections, 1800)

	assert.False(t, scaled)
	assert.Nil(t, overrides)
	assert.InDelta(t, 2400, achieved.Calories, 0.01)
}

func TestShrinkFactor(t *testing.T) {
	tests := []struct {
		name             string
		target           float64
		dayTotal         float64
		scalableCalories float64
		want             float64
	}{
		{"all scalable reduces to target over total", 1800, 2070, 2070, 1800.0 / 2070.0},
		{"fixed mass excluded from the solve", 1350, 1500, 1200, 0.875},
		{"clamped to minimum", 100, 2100, 2100, MinScaleFactor},
		{"clamped to one", 3000, 2000, 2000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, shrinkFactor(tt.target, tt.dayTotal, tt.scalableCalories), 1e-9)
		})
	}
}
