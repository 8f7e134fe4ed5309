package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first so a marshal failure never produces a
	// half-written body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped HTTP
// status and user message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName, "error", err)
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgProfileNotFoundError     = "Nutrition profile not found"
	ErrMsgRecipeNotFoundError      = "Recipe not found"
	ErrMsgPlannedMealNotFoundError = "Planned meal not found"
	ErrMsgPlanSlotExistsError      = "A meal is already planned for that slot"
	ErrMsgNoCandidateRecipeError   = "No suitable recipe found for that meal"
	ErrMsgMealTypeMismatchError    = "That recipe does not fit this meal slot"
	ErrMsgCalorieToleranceError    = "Replacement is too far from the planned calories"
	ErrMsgIngredientNotInRecipeErr = "That ingredient is not part of the recipe"
	ErrMsgIngredientNotScalableErr = "That ingredient's amount cannot be changed"
	ErrMsgAmountMustBePositiveErr  = "Amount must be greater than zero"
	ErrMsgInvalidMealTypeError     = "Invalid meal type"
	ErrMsgInvalidInputError        = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses: status code plus a message the caller can show as-is.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrPlannedMealNotFound):
		return http.StatusNotFound, ErrMsgPlannedMealNotFoundError
	case errors.Is(err, domain.ErrPlanSlotExists):
		return http.StatusConflict, ErrMsgPlanSlotExistsError
	case errors.Is(err, domain.ErrNoCandidateRecipe):
		return http.StatusNotFound, ErrMsgNoCandidateRecipeError
	case errors.Is(err, domain.ErrMealTypeMismatch):
		return http.StatusBadRequest, ErrMsgMealTypeMismatchError
	case errors.Is(err, domain.ErrCalorieToleranceExceeded):
		return http.StatusBadRequest, ErrMsgCalorieToleranceError
	case errors.Is(err, domain.ErrIngredientNotInRecipe):
		return http.StatusBadRequest, ErrMsgIngredientNotInRecipeErr
	case errors.Is(err, domain.ErrIngredientNotScalable):
		return http.StatusBadRequest, ErrMsgIngredientNotScalableErr
	case errors.Is(err, domain.ErrAmountMustBePositive):
		return http.StatusBadRequest, ErrMsgAmountMustBePositiveErr
	case errors.Is(err, domain.ErrInvalidMealType):
		return http.StatusBadRequest, ErrMsgInvalidMealTypeError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
