package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/platewise/mealplan-engine/internal/domain"
)

// salmonBowl is a two-ingredient fixture: 400 scalable + 100 fixed calories.
func salmonBowl() *domain.Recipe {
	return &domain.Recipe{
		ID:        7,
		Name:      "Salmon bowl",
		MealTypes: []domain.MealType{domain.MealTypeDinner},
		Totals:    domain.Macros{Calories: 500, ProteinG: 40, CarbsG: 30, FatsG: 20},
		Ingredients: []domain.RecipeIngredient{
			{IngredientID: 1, Name: "salmon", BaseAmount: 200, Unit: "g", IsScalable: true,
				Macros: domain.Macros{Calories: 400, ProteinG: 40, CarbsG: 0, FatsG: 18}},
			{IngredientID: 2, Name: "soy glaze", BaseAmount: 20, Unit: "ml", IsScalable: false,
				Macros: domain.Macros{Calories: 100, ProteinG: 0, CarbsG: 30, FatsG: 2}},
		},
	}
}

func TestHandleComputeMacros(t *testing.T) {
	t.Run("Without Overrides", func(t *testing.T) {
		mockCatalog := &MockCatalogService{}
		mockCatalog.On("GetRecipe", mock.Anything, 7).Return(salmonBowl(), nil)

		body := `{"recipe_id":7}`
		req := httptest.NewRequest("POST", "/api/v1/nutrition/macros", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleComputeMacros(mockCatalog).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"calories":500`)
		mockCatalog.AssertExpectations(t)
	})

	t.Run("With Override", func(t *testing.T) {
		mockCatalog := &MockCatalogService{}
		mockCatalog.On("GetRecipe", mock.Anything, 7).Return(salmonBowl(), nil)

		// Halving the salmon removes 200 of its 400 calories.
		body := `{"recipe_id":7,"ingredient_overrides":[{"ingredient_id":1,"new_amount":100}]}`
		req := httptest.NewRequest("POST", "/api/v1/nutrition/macros", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleComputeMacros(mockCatalog).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"calories":300`)
	})

	t.Run("Override For Unknown Ingredient", func(t *testing.T) {
		mockCatalog := &MockCatalogService{}
		mockCatalog.On("GetRecipe", mock.Anything, 7).Return(salmonBowl(), nil)

		body := `{"recipe_id":7,"ingredient_overrides":[{"ingredient_id":99,"new_amount":100}]}`
		req := httptest.NewRequest("POST", "/api/v1/nutrition/macros", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleComputeMacros(mockCatalog).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgIngredientNotInRecipeErr)
	})

	t.Run("Recipe Not Found", func(t *testing.T) {
		mockCatalog := &MockCatalogService{}
		mockCatalog.On("GetRecipe", mock.Anything, 404).Return(nil, domain.ErrRecipeNotFound)

		body := `{"recipe_id":404}`
		req := httptest.NewRequest("POST", "/api/v1/nutrition/macros", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleComputeMacros(mockCatalog).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleValidateOverride(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Valid Override",
			body:           `{"recipe_id":7,"ingredient_id":1,"new_amount":150}`,
			expectedStatus: http.StatusOK,
			expectedBody:   MsgOverrideValid,
		},
		{
			name:           "Ingredient Not In Recipe",
			body:           `{"recipe_id":7,"ingredient_id":99,"new_amount":150}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgIngredientNotInRecipeErr,
		},
		{
			name:           "Ingredient Not Scalable",
			body:           `{"recipe_id":7,"ingredient_id":2,"new_amount":30}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgIngredientNotScalableErr,
		},
		{
			name:           "Non-Positive Amount",
			body:           `{"recipe_id":7,"ingredient_id":1,"new_amount":0}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgAmountMustBePositiveErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCatalog := &MockCatalogService{}
			mockCatalog.On("GetRecipe", mock.Anything, 7).Return(salmonBowl(), nil)

			req := httptest.NewRequest("POST", "/api/v1/nutrition/override/validate", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			HandleValidateOverride(mockCatalog).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
