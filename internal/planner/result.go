package planner

import (
	"time"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// SlotFailure records one meal slot that could not be filled or persisted.
// Batches degrade to partial results instead of aborting.
type SlotFailure struct {
	MealDate time.Time       `json:"meal_date"`
	MealType domain.MealType `json:"meal_type"`
	Code     string          `json:"code"`
	Reason   string          `json:"reason"`
}

// Slot identifies a (date, meal type) pair.
type Slot struct {
	MealDate time.Time       `json:"meal_date"`
	MealType domain.MealType `json:"meal_type"`
}

// DayPlan is the outcome of planning a single day: up to three drafts, one
// per meal type, plus per-slot failures and achieved-vs-target totals so the
// caller can judge the best-effort optimization.
type DayPlan struct {
	Date     time.Time            `json:"date"`
	Drafts   []domain.PlannedMeal `json:"drafts"`
	Failures []SlotFailure        `json:"failures,omitempty"`
	Target   domain.Macros        `json:"target"`
	Achieved domain.Macros        `json:"achieved"`
	Scaled   bool                 `json:"scaled"`
}

// GenerateResult reports a batch generation run. AlreadyExisted carries slots
// whose insert hit the uniqueness constraint - an expected outcome when
// generation requests race, not an error.
type GenerateResult struct {
	Created        []domain.PlannedMeal `json:"created"`
	AlreadyExisted []Slot               `json:"already_existed,omitempty"`
	Failures       []SlotFailure        `json:"failures,omitempty"`
}
