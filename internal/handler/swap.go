package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/metrics"
	"github.com/platewise/mealplan-engine/internal/swap"
)

// SwapMealRequest represents the body of the meal swap request
type SwapMealRequest struct {
	PlannedMealID string `json:"planned_meal_id" validate:"required,uuid"`
	NewRecipeID   int    `json:"new_recipe_id" validate:"required,min=1"`
}

// SwapMealResponse carries the updated planned meal after a swap
type SwapMealResponse struct {
	Message string             `json:"message"`
	Meal    *domain.PlannedMeal `json:"meal"`
}

// HandleSwapMeal replaces a planned meal's recipe
// @Summary Swap a planned meal
// @Description Replaces the meal's recipe if the candidate shares the meal type and stays within the calorie tolerance; ingredient overrides are reset
// @Tags swap
// @Accept json
// @Produce json
// @Param request body SwapMealRequest true "Swap parameters"
// @Success 200 {object} SwapMealResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plan/meal/swap [post]
func HandleSwapMeal(svc swap.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SwapMealRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Swap meal"); err != nil {
			return
		}

		meal, err := svc.ValidateSwap(r.Context(), req.PlannedMealID, req.NewRecipeID)
		if err != nil {
			recordSwapRejection(err)
			respondServiceError(w, r, ErrMsgSwapMealFailed, err)
			return
		}

		metrics.SwapsAccepted.Inc()
		respondJSON(w, http.StatusOK, SwapMealResponse{
			Message: fmt.Sprintf(MsgSwapAcceptedFormat, MealTypeLabel(meal.MealType)),
			Meal:    meal,
		})
	}
}

func recordSwapRejection(err error) {
	switch {
	case errors.Is(err, domain.ErrMealTypeMismatch):
		metrics.SwapsRejected.WithLabelValues("meal_type_mismatch").Inc()
	case errors.Is(err, domain.ErrCalorieToleranceExceeded):
		metrics.SwapsRejected.WithLabelValues("calorie_tolerance").Inc()
	}
}

// ReplacementsResponse lists replacement candidates ranked by calorie distance
type ReplacementsResponse struct {
	Candidates []domain.ReplacementCandidate `json:"candidates"`
}

// HandleListReplacements lists swap candidates for a planned meal
// @Summary List replacement recipes
// @Description Returns catalog recipes sharing the meal type, ranked by absolute calorie distance from the planned meal; no tolerance pre-filter is applied
// @Tags swap
// @Produce json
// @Param planned_meal_id query string true "Planned meal ID"
// @Success 200 {object} ReplacementsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plan/meal/replacements [get]
func HandleListReplacements(svc swap.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plannedMealID, ok := GetQueryParam(r, w, "planned_meal_id")
		if !ok {
			return
		}

		candidates, err := svc.ListReplacements(r.Context(), plannedMealID)
		if err != nil {
			respondServiceError(w, r, ErrMsgReplacementsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ReplacementsResponse{Candidates: candidates})
	}
}
