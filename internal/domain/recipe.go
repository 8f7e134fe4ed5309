package domain

// MealType identifies the slot a recipe can fill within a day.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// AllMealTypes lists the meal slots of a day in serving order.
var AllMealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

// IsValid reports whether the meal type is one of the known slots.
func (mt MealType) IsValid() bool {
	switch mt {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// RecipeIngredient is one line of a recipe with its macro contribution at BaseAmount.
type RecipeIngredient struct {
	IngredientID int     `json:"ingredient_id"`
	Name         string  `json:"name"`
	BaseAmount   float64 `json:"base_amount"` // always > 0
	Unit         string  `json:"unit"`
	IsScalable   bool    `json:"is_scalable"`
	Macros       Macros  `json:"macros"` // contribution at BaseAmount
}

// Recipe is an immutable catalog entity. Totals must equal the sum of the
// ingredient contributions at base amount, within rounding tolerance.
type Recipe struct {
	ID          int                `json:"recipe_id"`
	Name        string             `json:"name"`
	MealTypes   []MealType         `json:"meal_types"` // at least one
	Totals      Macros             `json:"totals"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// HasMealType reports whether the recipe is tagged for the given slot.
func (r *Recipe) HasMealType(mt MealType) bool {
	for _, t := range r.MealTypes {
		if t == mt {
			return true
		}
	}
	return false
}

// Ingredient returns the recipe line for the given ingredient id, or nil.
func (r *Recipe) Ingredient(ingredientID int) *RecipeIngredient {
	for i := range r.Ingredients {
		if r.Ingredients[i].IngredientID == ingredientID {
			return &r.Ingredients[i]
		}
	}
	return nil
}

// CalorieBand is an inclusive calorie range used to filter candidate recipes.
type CalorieBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether the calorie value falls inside the band.
func (b CalorieBand) Contains(calories float64) bool {
	return calories >= b.Min && calories <= b.Max
}

// Midpoint returns the center of the band, used for deterministic ranking.
func (b CalorieBand) Midpoint() float64 {
	return (b.Min + b.Max) / 2
}

// ReplacementCandidate annotates a catalog recipe with its calorie distance
// from the meal it would replace. Derived, never persisted.
type ReplacementCandidate struct {
	Recipe      Recipe  `json:"recipe"`
	CalorieDiff float64 `json:"calorie_diff"`
}
