package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/platewise/mealplan-engine/internal/catalog"
	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/logger"
	"github.com/platewise/mealplan-engine/internal/metrics"
	"github.com/platewise/mealplan-engine/internal/repository"
)

// Service defines the interface for meal plan generation and inspection
type Service interface {
	// BuildDayPlan selects and scales three meal drafts for one day without
	// persisting them. Slots that cannot be filled are reported as failures
	// inside the result rather than failing the call.
	BuildDayPlan(ctx context.Context, userID string, date time.Time) (*DayPlan, error)

	// GeneratePlan fills every missing slot over [startDate, startDate+days).
	// Uniqueness violations from racing requests are folded into
	// AlreadyExisted; other per-slot problems land in Failures.
	GeneratePlan(ctx context.Context, userID string, startDate time.Time, days int) (*GenerateResult, error)

	// GetPlan returns the stored rows for the inclusive date range, ordered
	// by date then meal type.
	GetPlan(ctx context.Context, userID string, start, end time.Time) ([]domain.PlannedMeal, error)

	// FindMissingDays returns, in input order, the dates that do not have
	// all three meal types planned.
	FindMissingDays(ctx context.Context, userID string, dates []time.Time) ([]time.Time, error)

	// CountExisting counts planned-meal rows in the inclusive date range.
	CountExisting(ctx context.Context, userID string, start, end time.Time) (int, error)
}

type service struct {
	catalog     catalog.Service
	planRepo    repository.Plan
	profileRepo repository.Profile
}

// NewService creates a new planner service
func NewService(catalogSvc catalog.Service, planRepo repository.Plan, profileRepo repository.Profile) Service {
	return &service{
		catalog:     catalogSvc,
		planRepo:    planRepo,
		profileRepo: profileRepo,
	}
}

func (s *service) BuildDayPlan(ctx context.Context, userID string, date time.Time) (*DayPlan, error) {
	log := logger.FromContext(ctx)
	log.Info("BuildDayPlan called", "user_id", userID, "date", date.Format(time.DateOnly))

	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return s.buildDay(ctx, profile, domain.DateOnly(date), domain.AllMealTypes), nil
}

// buildDay selects one recipe per requested slot and, when the whole day is
// being generated, runs the day-level optimization pass. Partial days (gap
// fills) get unscaled drafts: optimizing a subset against the full daily
// target would starve the remaining slots.
func (s *service) buildDay(ctx context.Context, profile *domain.Profile, date time.Time, slots []domain.MealType) *DayPlan {
	log := logger.FromContext(ctx)

	// Equal thirds across breakfast/lunch/dinner; no per-meal-type
	// weighting is defined anywhere upstream.
	slotCalories := profile.TargetCalories / MealSlotsPerDay
	band := bandFor(slotCalories)

	day := &DayPlan{
		Date:   date,
		Target: profile.Targets(),
	}

	var selections []slotSelection
	for _, mealType := range slots {
		recipe, err := s.selectRecipe(ctx, mealType, band)
		if err != nil {
			log.Warn("Slot selection failed", "date", date.Format(time.DateOnly), "meal_type", mealType, "error", err)
			day.Failures = append(day.Failures, SlotFailure{
				MealDate: date,
				MealType: mealType,
				Code:     failureCode(err),
				Reason:   err.Error(),
			})
			continue
		}
		selections = append(selections, slotSelection{mealType: mealType, recipe: recipe})
	}

	var overrides map[domain.MealType][]domain.IngredientOverride
	if len(selections) == MealSlotsPerDay {
		overrides, day.Achieved, day.Scaled = optimizeDay(selections, profile.TargetCalories)
	} else {
		day.Achieved = unscaledTotal(selections)
	}

	for _, sel := range selections {
		day.Drafts = append(day.Drafts, domain.PlannedMeal{
			UserID:    profile.UserID,
			MealDate:  date,
			MealType:  sel.mealType,
			RecipeID:  sel.recipe.ID,
			Overrides: overrides[sel.mealType],
			IsEaten:   false,
		})
	}

	if day.Scaled {
		metrics.DaysScaled.Inc()
		log.Info("Day plan scaled to target",
			"date", date.Format(time.DateOnly),
			"target_calories", profile.TargetCalories,
			"achieved_calories", day.Achieved.Calories)
	}

	return day
}

func (s *service) GeneratePlan(ctx context.Context, userID string, startDate time.Time, days int) (*GenerateResult, error) {
	log := logger.FromContext(ctx)
	log.Info("GeneratePlan called", "user_id", userID, "start_date", startDate.Format(time.DateOnly), "days", days)

	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", domain.ErrInvalidInput, days)
	}

	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	start := domain.DateOnly(startDate)
	end := start.AddDate(0, 0, days-1)

	existing, err := s.planRepo.QueryPlannedMeals(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing plan: %w", err)
	}
	present := presenceByDay(existing)

	result := &GenerateResult{}
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		missing := missingSlots(present[date])
		if len(missing) == 0 {
			continue
		}

		day := s.buildDay(ctx, profile, date, missing)
		result.Failures = append(result.Failures, day.Failures...)
		s.insertDrafts(ctx, day.Drafts, result)
	}

	log.Info("GeneratePlan finished",
		"created", len(result.Created),
		"already_existed", len(result.AlreadyExisted),
		"failures", len(result.Failures))

	return result, nil
}

// insertDrafts persists drafts one row at a time so a single slot's failure
// never rolls back its siblings.
func (s *service) insertDrafts(ctx context.Context, drafts []domain.PlannedMeal, result *GenerateResult) {
	log := logger.FromContext(ctx)

	for i := range drafts {
		stored, err := s.planRepo.InsertPlannedMeal(ctx, &drafts[i])
		if err == nil {
			result.Created = append(result.Created, *stored)
			continue
		}

		if errors.Is(err, domain.ErrPlanSlotExists) {
			// A concurrent generation request got here first. The slot is
			// filled either way.
			result.AlreadyExisted = append(result.AlreadyExisted, Slot{
				MealDate: drafts[i].MealDate,
				MealType: drafts[i].MealType,
			})
			continue
		}

		log.Error("Failed to insert planned meal",
			"date", drafts[i].MealDate.Format(time.DateOnly),
			"meal_type", drafts[i].MealType,
			"error", err)
		result.Failures = append(result.Failures, SlotFailure{
			MealDate: drafts[i].MealDate,
			MealType: drafts[i].MealType,
			Code:     FailureCodePersistence,
			Reason:   err.Error(),
		})
	}
}

func (s *service) GetPlan(ctx context.Context, userID string, start, end time.Time) ([]domain.PlannedMeal, error) {
	return s.planRepo.QueryPlannedMeals(ctx, userID, domain.DateOnly(start), domain.DateOnly(end))
}

func (s *service) FindMissingDays(ctx context.Context, userID string, dates []time.Time) ([]time.Time, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	start, end := dateBounds(dates)
	existing, err := s.planRepo.QueryPlannedMeals(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query planned meals: %w", err)
	}
	present := presenceByDay(existing)

	var missing []time.Time
	for _, d := range dates {
		date := domain.DateOnly(d)
		if len(missingSlots(present[date])) > 0 {
			missing = append(missing, date)
		}
	}

	return missing, nil
}

func (s *service) CountExisting(ctx context.Context, userID string, start, end time.Time) (int, error) {
	return s.planRepo.CountPlannedMeals(ctx, userID, domain.DateOnly(start), domain.DateOnly(end))
}

// ---- helpers ----

func failureCode(err error) string {
	if errors.Is(err, domain.ErrNoCandidateRecipe) {
		return FailureCodeNoCandidateRecipe
	}
	return FailureCodePersistence
}

func unscaledTotal(selections []slotSelection) domain.Macros {
	var total domain.Macros
	for _, sel := range selections {
		total = total.Add(sel.recipe.Totals)
	}
	return total
}

// presenceByDay indexes persisted rows by date and meal type.
func presenceByDay(meals []domain.PlannedMeal) map[time.Time]map[domain.MealType]bool {
	present := make(map[time.Time]map[domain.MealType]bool)
	for _, m := range meals {
		date := domain.DateOnly(m.MealDate)
		if present[date] == nil {
			present[date] = make(map[domain.MealType]bool, MealSlotsPerDay)
		}
		present[date][m.MealType] = true
	}
	return present
}

// missingSlots returns the meal types absent from a day, in serving order.
func missingSlots(have map[domain.MealType]bool) []domain.MealType {
	var missing []domain.MealType
	for _, mt := range domain.AllMealTypes {
		if !have[mt] {
			missing = append(missing, mt)
		}
	}
	return missing
}

func dateBounds(dates []time.Time) (start, end time.Time) {
	start = domain.DateOnly(dates[0])
	end = start
	for _, d := range dates[1:] {
		date := domain.DateOnly(d)
		if date.Before(start) {
			start = date
		}
		if date.After(end) {
			end = date
		}
	}
	return start, end
}
