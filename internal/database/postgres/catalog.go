package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platewise/mealplan-engine/internal/domain"
	"github.com/platewise/mealplan-engine/internal/repository"
)

type catalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new PostgreSQL recipe catalog repository
func NewCatalogRepository(db *pgxpool.Pool) repository.Catalog {
	return &catalogRepository{db: db}
}

const recipeColumns = `
	r.recipe_id, r.recipe_name,
	r.total_calories, r.total_protein_g, r.total_carbs_g, r.total_fats_g,
	ARRAY(SELECT mt.meal_type FROM recipe_meal_types mt
	      WHERE mt.recipe_id = r.recipe_id ORDER BY mt.meal_type)`

// GetRecipe returns a recipe with its ordered ingredient list
func (r *catalogRepository) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes r
		WHERE r.recipe_id = $1
	`

	recipe, err := scanRecipe(r.db.QueryRow(ctx, query, recipeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrRecipeNotFound, recipeID)
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	ingredients, err := r.loadIngredients(ctx, []int32{int32(recipe.ID)})
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients[recipe.ID]

	return recipe, nil
}

// QueryByMealType returns recipes tagged with the meal type, optionally
// filtered to an inclusive calorie band
func (r *catalogRepository) QueryByMealType(ctx context.Context, mealType domain.MealType, band *domain.CalorieBand) ([]domain.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes r
		JOIN recipe_meal_types t ON t.recipe_id = r.recipe_id
		WHERE t.meal_type = $1
	`
	args := []interface{}{string(mealType)}

	if band != nil {
		query += " AND r.total_calories BETWEEN $2 AND $3"
		args = append(args, band.Min, band.Max)
	}
	query += " ORDER BY r.recipe_id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	var ids []int32
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, *recipe)
		ids = append(ids, int32(recipe.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	if len(recipes) == 0 {
		return nil, nil
	}

	ingredients, err := r.loadIngredients(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].Ingredients = ingredients[recipes[i].ID]
	}

	return recipes, nil
}

// loadIngredients fetches ingredient lines for a set of recipes, preserving
// recipe order via the position column
func (r *catalogRepository) loadIngredients(ctx context.Context, recipeIDs []int32) (map[int][]domain.RecipeIngredient, error) {
	query := `
		SELECT recipe_id, ingredient_id, ingredient_name, base_amount, unit, is_scalable,
		       calories, protein_g, carbs_g, fats_g
		FROM recipe_ingredients
		WHERE recipe_id = ANY($1)
		ORDER BY recipe_id, position
	`

	rows, err := r.db.Query(ctx, query, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe ingredients: %w", err)
	}
	defer rows.Close()

	result := make(map[int][]domain.RecipeIngredient, len(recipeIDs))
	for rows.Next() {
		var recipeID int
		var ing domain.RecipeIngredient
		if err := rows.Scan(
			&recipeID, &ing.IngredientID, &ing.Name, &ing.BaseAmount, &ing.Unit, &ing.IsScalable,
			&ing.Macros.Calories, &ing.Macros.ProteinG, &ing.Macros.CarbsG, &ing.Macros.FatsG,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe ingredient: %w", err)
		}
		result[recipeID] = append(result[recipeID], ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipe ingredients: %w", err)
	}

	return result, nil
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var recipe domain.Recipe
	var mealTypes []string
	if err := row.Scan(
		&recipe.ID, &recipe.Name,
		&recipe.Totals.Calories, &recipe.Totals.ProteinG, &recipe.Totals.CarbsG, &recipe.Totals.FatsG,
		&mealTypes,
	); err != nil {
		return nil, err
	}

	recipe.MealTypes = make([]domain.MealType, len(mealTypes))
	for i, mt := range mealTypes {
		recipe.MealTypes[i] = domain.MealType(mt)
	}

	return &recipe, nil
}
