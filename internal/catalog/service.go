package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/logger"
	"github.com/platewise/mealplan-engine/internal/nutrition"
	"github.com/platewise/mealplan-engine/internal/repository"
)

// Cache sizing defaults. The catalog is small relative to user data, so a
// few hundred entries covers the working set.
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 15 * time.Minute
)

// Service defines the interface for read-only recipe catalog access
type Service interface {
	GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error)
	QueryByMealType(ctx context.Context, mealType domain.MealType, band *domain.CalorieBand) ([]domain.Recipe, error)
	CacheLen() int
}

type service struct {
	repo  repository.Catalog
	cache *recipeCache
}

// NewService creates a catalog service with a read-through recipe cache
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:  repo,
		cache: newRecipeCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	if recipe, ok := s.cache.Get(recipeID); ok {
		return recipe, nil
	}

	recipe, err := s.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe %d: %w", recipeID, err)
	}

	s.checkTotals(ctx, recipe)
	s.cache.Set(recipe)
	return recipe, nil
}

func (s *service) QueryByMealType(ctx context.Context, mealType domain.MealType, band *domain.CalorieBand) ([]domain.Recipe, error) {
	if !mealType.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidMealType, mealType)
	}

	recipes, err := s.repo.QueryByMealType(ctx, mealType, band)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes for %s: %w", mealType, err)
	}

	for i := range recipes {
		s.checkTotals(ctx, &recipes[i])
		s.cache.Set(&recipes[i])
	}

	return recipes, nil
}

func (s *service) CacheLen() int {
	return s.cache.Len()
}

// checkTotals logs catalog rows whose aggregate totals drift from the sum of
// their ingredient contributions. Content bugs, not engine failures.
func (s *service) checkTotals(ctx context.Context, recipe *domain.Recipe) {
	if !nutrition.VerifyTotals(recipe) {
		logger.FromContext(ctx).Warn("Recipe totals do not match ingredient contributions",
			"recipe_id", recipe.ID, "recipe_name", recipe.Name)
	}
}
