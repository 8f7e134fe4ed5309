package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/repository"
)

type profileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db *pgxpool.Pool) repository.Profile {
	return &profileRepository{db: db}
}

// GetProfile returns the user's daily nutrition targets
func (r *profileRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT user_id, target_calories, target_protein_g, target_carbs_g, target_fats_g
		FROM profiles
		WHERE user_id = $1
	`

	var profile domain.Profile
	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, userUUID).Scan(
		&id, &profile.TargetCalories, &profile.TargetProteinG, &profile.TargetCarbsG, &profile.TargetFatsG,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	profile.UserID = id.String()

	return &profile, nil
}
