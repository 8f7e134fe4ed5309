package handler

import (
	"net/http"

	"github.com/platewise/mealplan-engine/internal/catalog"
	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/nutrition"
)

// ComputeMacrosRequest represents the body of the macro computation request
type ComputeMacrosRequest struct {
	RecipeID  int                        `json:"recipe_id" validate:"required,min=1"`
	Overrides []domain.IngredientOverride `json:"ingredient_overrides,omitempty" validate:"omitempty,dive"`
}

// ComputeMacrosResponse carries the override-adjusted macro totals
type ComputeMacrosResponse struct {
	RecipeID int           `json:"recipe_id"`
	Macros   domain.Macros `json:"macros"`
}

// HandleComputeMacros computes a recipe's macros with overrides applied
// @Summary Compute macros
// @Description Returns the recipe's macro totals with the given ingredient overrides applied; overrides are validated against the recipe first
// @Tags nutrition
// @Accept json
// @Produce json
// @Param request body ComputeMacrosRequest true "Recipe and overrides"
// @Success 200 {object} ComputeMacrosResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /nutrition/macros [post]
func HandleComputeMacros(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ComputeMacrosRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Compute macros"); err != nil {
			return
		}

		recipe, err := svc.GetRecipe(r.Context(), req.RecipeID)
		if err != nil {
			respondServiceError(w, r, ErrMsgComputeMacrosFailed, err)
			return
		}

		if err := nutrition.ValidateOverrides(recipe, req.Overrides); err != nil {
			respondServiceError(w, r, ErrMsgComputeMacrosFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ComputeMacrosResponse{
			RecipeID: recipe.ID,
			Macros:   nutrition.ComputeMacros(recipe, req.Overrides),
		})
	}
}

// ValidateOverrideRequest represents the body of the override validation request
type ValidateOverrideRequest struct {
	RecipeID     int     `json:"recipe_id" validate:"required,min=1"`
	IngredientID int     `json:"ingredient_id" validate:"required,min=1"`
	NewAmount    float64 `json:"new_amount"`
}

// HandleValidateOverride checks one ingredient override against a recipe
// @Summary Validate an ingredient override
// @Description Checks that the ingredient belongs to the recipe, is scalable, and the new amount is positive
// @Tags nutrition
// @Accept json
// @Produce json
// @Param request body ValidateOverrideRequest true "Override to validate"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /nutrition/override/validate [post]
func HandleValidateOverride(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateOverrideRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Validate override"); err != nil {
			return
		}

		recipe, err := svc.GetRecipe(r.Context(), req.RecipeID)
		if err != nil {
			respondServiceError(w, r, ErrMsgValidateOverrideFail, err)
			return
		}

		override := domain.IngredientOverride{
			IngredientID: req.IngredientID,
			NewAmount:    req.NewAmount,
		}
		if err := nutrition.ValidateOverride(recipe, override); err != nil {
			respondServiceError(w, r, ErrMsgValidateOverrideFail, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgOverrideValid})
	}
}
