package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/easyeats/easyeats-server/internal/model"
)

var _ model.RecipeStore = (*RecipeRepository)(nil)

type RecipeRepository struct {
	db *Connection
}

func NewRecipeRepository(db *Connection) *RecipeRepository {
	return &RecipeRepository{
		db: db,
	}
}

const recipeColumns = `id, account_id, title, description, ingredients, instructions, cooking_time, difficulty, image_key, created_at, updated_at`

func scanRecipe(row pgx.Row) (model.Recipe, error) {
	var recipe model.Recipe
	err := row.Scan(
		&recipe.ID, &recipe.AccountID, &recipe.Title, &recipe.Description,
		&recipe.Ingredients, &recipe.Instructions, &recipe.CookingTime,
		&recipe.Difficulty, &recipe.ImageKey, &recipe.CreatedAt, &recipe.UpdatedAt,
	)
	return recipe, err
}

func (r *RecipeRepository) Create(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	query := `INSERT INTO recipes (id, account_id, title, description, ingredients, instructions, cooking_time, difficulty, image_key)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + recipeColumns

	savedRecipe, err := scanRecipe(r.db.QueryRow(ctx, query,
		recipe.ID, recipe.AccountID, recipe.Title, recipe.Description,
		recipe.Ingredients, recipe.Instructions, recipe.CookingTime,
		recipe.Difficulty, recipe.ImageKey,
	))
	if err != nil {
		return model.Recipe{}, fmt.Errorf("failed to create recipe: %w", err)
	}

	return savedRecipe, nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`

	recipe, err := scanRecipe(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Recipe{}, model.ErrNotFound
		}
		return model.Recipe{}, fmt.Errorf("failed to get recipe by id: %w", err)
	}

	return recipe, nil
}

func (r *RecipeRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE account_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes by account id: %w", err)
	}
	defer rows.Close()

	recipes := []model.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	return recipes, nil
}

func (r *RecipeRepository) Update(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	query := `UPDATE recipes
			  SET title = $2, description = $3, ingredients = $4, instructions = $5,
			      cooking_time = $6, difficulty = $7, image_key = $8, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + recipeColumns

	savedRecipe, err := scanRecipe(r.db.QueryRow(ctx, query,
		recipe.ID, recipe.Title, recipe.Description, recipe.Ingredients,
		recipe.Instructions, recipe.CookingTime, recipe.Difficulty, recipe.ImageKey,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Recipe{}, model.ErrNotFound
		}
		return model.Recipe{}, fmt.Errorf("failed to update recipe: %w", err)
	}

	return savedRecipe, nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
