package repository

import (
	"context"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// Profile defines the interface for reading user nutrition targets
type Profile interface {
	// GetProfile returns the user's daily targets.
	// Returns domain.ErrProfileNotFound when the user has no profile.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}
