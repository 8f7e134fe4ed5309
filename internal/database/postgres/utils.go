package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// ---- Common Helper Functions ----

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
// Use this instead of repeating uuid.Parse + error wrapping throughout the codebase.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id: %w", err)
	}
	return u, nil
}

// isUniqueViolation reports whether the error is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolationCode
}

// marshalOverrides serializes ingredient overrides for the JSONB column.
// A nil slice maps to SQL NULL, preserving the "unscaled" state.
func marshalOverrides(overrides []domain.IngredientOverride) ([]byte, error) {
	if overrides == nil {
		return nil, nil
	}
	data, err := json.Marshal(overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal overrides: %w", err)
	}
	return data, nil
}

// unmarshalOverrides deserializes the JSONB column, mapping NULL back to nil.
func unmarshalOverrides(data []byte) ([]domain.IngredientOverride, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var overrides []domain.IngredientOverride
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overrides: %w", err)
	}
	return overrides, nil
}
