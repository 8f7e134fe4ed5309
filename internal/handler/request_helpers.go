package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/platewise/mealplan-engine/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// writes the error response itself on failure. If it returns an error the
// handler should simply return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter. If it is missing the
// error response has already been written and the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetDateParam retrieves a required YYYY-MM-DD query parameter. If it is
// missing or malformed the error response has already been written.
func GetDateParam(r *http.Request, w http.ResponseWriter, paramName string) (time.Time, bool) {
	value, ok := GetQueryParam(r, w, paramName)
	if !ok {
		return time.Time{}, false
	}

	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Invalid %s query parameter", paramName), "value", value)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidDateParam, paramName))
		return time.Time{}, false
	}
	return date, true
}
