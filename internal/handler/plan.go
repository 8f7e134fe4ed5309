package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/logger"
	"github.com/platewise/mealplan-engine/internal/metrics"
	"github.com/platewise/mealplan-engine/internal/planner"
)

// GeneratePlanRequest represents the body of the plan generation request
type GeneratePlanRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	Days      int    `json:"days" validate:"required,min=1,max=31"`
}

// GeneratePlanResponse wraps the batch generation result
type GeneratePlanResponse struct {
	Created        []domain.PlannedMeal  `json:"created"`
	AlreadyExisted []planner.Slot        `json:"already_existed,omitempty"`
	Failures       []planner.SlotFailure `json:"failures,omitempty"`
}

// HandleGeneratePlan fills every missing meal slot over a date range
// @Summary Generate a meal plan
// @Description Fills missing (date, meal type) slots over the range with recipe drafts scaled toward the user's daily calorie target
// @Tags plan
// @Accept json
// @Produce json
// @Param request body GeneratePlanRequest true "Generation parameters"
// @Success 200 {object} GeneratePlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plan/generate [post]
func HandleGeneratePlan(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GeneratePlanRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate plan"); err != nil {
			return
		}

		startDate, err := time.Parse(time.DateOnly, req.StartDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		result, err := svc.GeneratePlan(r.Context(), req.UserID, startDate, req.Days)
		if err != nil {
			respondServiceError(w, r, ErrMsgGeneratePlanFailed, err)
			return
		}

		for _, meal := range result.Created {
			metrics.MealsPlanned.WithLabelValues(string(meal.MealType)).Inc()
		}
		metrics.MealSlotsConflict.Add(float64(len(result.AlreadyExisted)))
		for _, failure := range result.Failures {
			metrics.MealSlotsUnfilled.WithLabelValues(failure.Code).Inc()
		}

		respondJSON(w, http.StatusOK, GeneratePlanResponse{
			Created:        result.Created,
			AlreadyExisted: result.AlreadyExisted,
			Failures:       result.Failures,
		})
	}
}

// PlanResponse lists stored planned meals for a date range
type PlanResponse struct {
	Meals []domain.PlannedMeal `json:"meals"`
	Count int                  `json:"count"`
}

// HandleGetPlan returns the stored plan rows for a date range
// @Summary Get planned meals
// @Description Returns planned meals for the user between start_date and end_date inclusive
// @Tags plan
// @Produce json
// @Param user_id query string true "User ID"
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plan [get]
func HandleGetPlan(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		start, ok := GetDateParam(r, w, "start_date")
		if !ok {
			return
		}
		end, ok := GetDateParam(r, w, "end_date")
		if !ok {
			return
		}

		meals, err := svc.GetPlan(r.Context(), userID, start, end)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPlanFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, PlanResponse{Meals: meals, Count: len(meals)})
	}
}

// MissingDaysResponse lists the dates that are not fully planned
type MissingDaysResponse struct {
	MissingDays []string `json:"missing_days"`
}

// HandleMissingDays reports which of the given dates lack a complete plan
// @Summary Find incompletely planned days
// @Description Returns, in input order, the dates that do not have all three meal types planned
// @Tags plan
// @Produce json
// @Param user_id query string true "User ID"
// @Param dates query string true "Comma-separated dates (YYYY-MM-DD)"
// @Success 200 {object} MissingDaysResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plan/missing-days [get]
func HandleMissingDays(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		rawDates, ok := GetQueryParam(r, w, "dates")
		if !ok {
			return
		}

		var dates []time.Time
		for _, raw := range strings.Split(rawDates, ",") {
			d, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
			if err != nil {
				logger.FromContext(r.Context()).Warn("Invalid date in dates parameter", "value", raw)
				respondError(w, http.StatusBadRequest, "Invalid dates parameter, expected comma-separated YYYY-MM-DD")
				return
			}
			dates = append(dates, d)
		}

		missing, err := svc.FindMissingDays(r.Context(), userID, dates)
		if err != nil {
			respondServiceError(w, r, ErrMsgMissingDaysFailed, err)
			return
		}

		days := make([]string, 0, len(missing))
		for _, d := range missing {
			days = append(days, d.Format(time.DateOnly))
		}

		respondJSON(w, http.StatusOK, MissingDaysResponse{MissingDays: days})
	}
}

// PlanCountResponse carries the number of planned meals in a range
type PlanCountResponse struct {
	Count int `json:"count"`
}

// HandlePlanCount counts planned meals in a date range
// @Summary Count planned meals
// @Description Returns the number of planned meals for the user between start_date and end_date inclusive
// @Tags plan
// @Produce json
// @Param user_id query string true "User ID"
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} PlanCountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plan/count [get]
func HandlePlanCount(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		start, ok := GetDateParam(r, w, "start_date")
		if !ok {
			return
		}
		end, ok := GetDateParam(r, w, "end_date")
		if !ok {
			return
		}

		count, err := svc.CountExisting(r.Context(), userID, start, end)
		if err != nil {
			respondServiceError(w, r, ErrMsgPlanCountFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, PlanCountResponse{Count: count})
	}
}
