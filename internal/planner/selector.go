package planner

import (
	"context"
	"fmt"
	"math"

	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/logger"
)

// bandFor derives the selector's inclusive calorie band from a per-slot
// calorie target.
func bandFor(slotCalories float64) domain.CalorieBand {
	return domain.CalorieBand{
		Min: slotCalories * (1 - CalorieBandTolerance),
		Max: slotCalories * (1 + CalorieBandTolerance),
	}
}

// selectRecipe picks one catalog recipe for a meal slot. The widening policy
// is deterministic and intentionally narrow: query inside the band first,
// then retry once with the calorie filter removed, then give up with
// domain.ErrNoCandidateRecipe. Among candidates the recipe closest in
// calories to the band midpoint wins; ties go to the lower id.
func (s *service) selectRecipe(ctx context.Context, mealType domain.MealType, band domain.CalorieBand) (*domain.Recipe, error) {
	candidates, err := s.catalog.QueryByMealType(ctx, mealType, &band)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		logger.FromContext(ctx).Debug("No recipe in calorie band, widening",
			"meal_type", mealType, "band_min", band.Min, "band_max", band.Max)
		candidates, err = s.catalog.QueryByMealType(ctx, mealType, nil)
		if err != nil {
			return nil, err
		}
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoCandidateRecipe, mealType)
	}

	return closestToMidpoint(candidates, band.Midpoint()), nil
}

// closestToMidpoint returns the candidate whose total calories sit nearest
// the band midpoint. Candidates arrive ordered by id, so the first best
// match keeps selection deterministic.
func closestToMidpoint(candidates []domain.Recipe, midpoint float64) *domain.Recipe {
	best := 0
	bestDist := math.Abs(candidates[0].Totals.Calories - midpoint)
	for i := 1; i < len(candidates); i++ {
		dist := math.Abs(candidates[i].Totals.Calories - midpoint)
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return &candidates[best]
}
