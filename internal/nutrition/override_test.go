package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/mealplan-engine/internal/domain"
)

func TestValidateOverride(t *testing.T) {
	recipe := testRecipe()

	tests := []struct {
		name     string
		override domain.IngredientOverride
		wantErr  error
	}{
		{
			name:     "valid scalable ingredient",
			override: domain.IngredientOverride{IngredientID: 1, NewAmount: 180},
			wantErr:  nil,
		},
		{
			name:     "non-scalable ingredient",
			override: domain.IngredientOverride{IngredientID: 4, NewAmount: 5},
			wantErr:  domain.ErrIngredientNotScalable,
		},
		{
			name:     "zero amount",
			override: domain.IngredientOverride{IngredientID: 1, NewAmount: 0},
			wantErr:  domain.ErrAmountMustBePositive,
		},
		{
			name:     "negative amount",
			override: domain.IngredientOverride{IngredientID: 2, NewAmount: -10},
			wantErr:  domain.ErrAmountMustBePositive,
		},
		{
			name:     "ingredient absent from recipe",
			override: domain.IngredientOverride{IngredientID: 999, NewAmount: 100},
			wantErr:  domain.ErrIngredientNotInRecipe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOverride(recipe, tt.override)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateOverride_NoUpperBound(t *testing.T) {
	recipe := testRecipe()

	// +50% and beyond is accepted; warnings about large changes belong to
	// the presentation layer.
	err := ValidateOverride(recipe, domain.IngredientOverride{IngredientID: 1, NewAmount: 600})
	assert.NoError(t, err)
}

func TestValidateOverrides_ReturnsFirstFailure(t *testing.T) {
	recipe := testRecipe()

	err := ValidateOverrides(recipe, []domain.IngredientOverride{
		{IngredientID: 1, NewAmount: 150},
		{IngredientID: 4, NewAmount: 5},
		{IngredientID: 999, NewAmount: 1},
	})

	assert.ErrorIs(t, err, domain.ErrIngredientNotScalable)
}
