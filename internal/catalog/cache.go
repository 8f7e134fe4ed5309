package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// recipeCache provides an in-memory LRU cache for recipe lookups.
// Recipes are immutable from the engine's perspective, so entries never need
// explicit invalidation; the TTL only bounds memory held for cold entries.
type recipeCache struct {
	lru *expirable.LRU[int, *domain.Recipe]
}

// newRecipeCache creates a cache with the given capacity and entry TTL.
func newRecipeCache(size int, ttl time.Duration) *recipeCache {
	return &recipeCache{
		lru: expirable.NewLRU[int, *domain.Recipe](size, nil, ttl),
	}
}

func (c *recipeCache) Get(recipeID int) (*domain.Recipe, bool) {
	return c.lru.Get(recipeID)
}

func (c *recipeCache) Set(recipe *domain.Recipe) {
	c.lru.Add(recipe.ID, recipe)
}

// Len returns the number of cached recipes, exposed for cache stats.
func (c *recipeCache) Len() int {
	return c.lru.Len()
}
