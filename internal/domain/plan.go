package domain

import "time"

// IngredientOverride replaces one ingredient's amount for a single planned
// meal without altering the underlying recipe definition.
type IngredientOverride struct {
	IngredientID int     `json:"ingredient_id"`
	NewAmount    float64 `json:"new_amount"` // must be > 0
}

// PlannedMeal is one row per (user, date, meal type).
// The persistence layer enforces uniqueness on that triple.
type PlannedMeal struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	MealDate  time.Time            `json:"meal_date"`
	MealType  MealType             `json:"meal_type"`
	RecipeID  int                  `json:"recipe_id"`
	Overrides []IngredientOverride `json:"ingredient_overrides,omitempty"` // nil when unscaled
	IsEaten   bool                 `json:"is_eaten"`
	CreatedAt time.Time            `json:"created_at"`
}

// PlannedMealPatch carries the mutable fields of a planned-meal update.
// A swap sets RecipeID and clears Overrides; scaling decisions never carry
// across a swap.
type PlannedMealPatch struct {
	RecipeID  int                  `json:"recipe_id"`
	Overrides []IngredientOverride `json:"ingredient_overrides"`
}

// DateOnly truncates a timestamp to midnight UTC so planned-meal dates
// compare exactly.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
