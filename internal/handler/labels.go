package handler

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/platewise/mealplan-engine/internal/domain"
)

var titleCaser = cases.Title(language.English)

// MealTypeLabel returns the user-facing label for a meal type ("Breakfast").
func MealTypeLabel(mt domain.MealType) string {
	return titleCaser.String(string(mt))
}
