package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Selection errors
	ErrMsgNoCandidateRecipe = "no candidate recipe"

	// Swap errors
	ErrMsgMealTypeMismatch         = "meal type mismatch"
	ErrMsgCalorieToleranceExceeded = "calorie tolerance exceeded"

	// Ingredient override errors
	ErrMsgIngredientNotInRecipe = "ingredient not in recipe"
	ErrMsgIngredientNotScalable = "ingredient is not scalable"
	ErrMsgAmountMustBePositive  = "amount must be positive"

	// Plan errors
	ErrMsgPlanSlotExists      = "plan slot already exists"
	ErrMsgPlannedMealNotFound = "planned meal not found"

	// Catalog errors
	ErrMsgRecipeNotFound = "recipe not found"

	// Profile errors
	ErrMsgProfileNotFound = "profile not found"

	// Input errors
	ErrMsgInvalidMealType = "invalid meal type"
	ErrMsgInvalidInput    = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Selection errors
	ErrNoCandidateRecipe = errors.New(ErrMsgNoCandidateRecipe)

	// Swap errors
	ErrMealTypeMismatch         = errors.New(ErrMsgMealTypeMismatch)
	ErrCalorieToleranceExceeded = errors.New(ErrMsgCalorieToleranceExceeded)

	// Ingredient override errors
	ErrIngredientNotInRecipe = errors.New(ErrMsgIngredientNotInRecipe)
	ErrIngredientNotScalable = errors.New(ErrMsgIngredientNotScalable)
	ErrAmountMustBePositive  = errors.New(ErrMsgAmountMustBePositive)

	// Plan errors
	// ErrPlanSlotExists signals the (user, date, meal type) uniqueness constraint.
	// During batch generation it is an expected outcome, not a failure.
	ErrPlanSlotExists      = errors.New(ErrMsgPlanSlotExists)
	ErrPlannedMealNotFound = errors.New(ErrMsgPlannedMealNotFound)

	// Catalog errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// Profile errors
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)

	// Input errors
	ErrInvalidMealType = errors.New(ErrMsgInvalidMealType)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
