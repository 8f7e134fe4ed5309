package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for meal types
	_ = v.RegisterValidation("mealtype", validateMealType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// without leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "uuid":
			errs[field] = "Must be a valid UUID"
		case "mealtype":
			errs[field] = "Must be breakfast, lunch or dinner"
		case "datetime":
			errs[field] = "Must be a date in YYYY-MM-DD format"
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Custom validation function for meal types
func validateMealType(fl validator.FieldLevel) bool {
	mt := fl.Field().String()
	// Empty is left to the 'required' tag
	if mt == "" {
		return true
	}
	return domain.MealType(strings.ToLower(mt)).IsValid()
}
