package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
)

// Recipe implements ownership-scoped recipe operations.
type Recipe struct {
	recipeStore model.RecipeStore
	storage     model.Storage
	logger      *logger.Logger
}

// NewRecipe creates a new Recipe service.
func NewRecipe(
	recipeStore model.RecipeStore,
	storage model.Storage,
	logger *logger.Logger,
) *Recipe {
	return &Recipe{
		recipeStore: recipeStore,
		storage:     storage,
		logger:      logger,
	}
}

// List returns the caller's recipes. Recipes owned by other accounts are
// never included.
func (s *Recipe) List(ctx context.Context, accountID uuid.UUID) ([]model.Recipe, error) {
	recipes, err := s.recipeStore.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes by account id: %w", err)
	}

	return recipes, nil
}

// Get returns the recipe only when the caller owns it.
func (s *Recipe) Get(ctx context.Context, accountID, recipeID uuid.UUID) (model.Recipe, error) {
	recipe, err := s.recipeStore.GetByID(ctx, recipeID)
	if err != nil {
		return model.Recipe{}, err
	}

	return requireOwned(recipe, accountID)
}

// Create stores a new recipe. The owner always comes from the authenticated
// context regardless of the payload.
func (s *Recipe) Create(ctx context.Context, accountID uuid.UUID, params model.CreateRecipeParams) (model.Recipe, error) {
	if err := params.Validate(); err != nil {
		return model.Recipe{}, err
	}

	recipe := model.Recipe{
		ID:           uuid.New(),
		AccountID:    accountID,
		Title:        params.Title,
		Description:  params.Description,
		Ingredients:  params.Ingredients,
		Instructions: params.Instructions,
		CookingTime:  params.CookingTime,
		Difficulty:   params.Difficulty,
	}

	saved, err := s.recipeStore.Create(ctx, recipe)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("failed to create recipe: %w", err)
	}

	return saved, nil
}

// Update applies a partial update to the caller's recipe. Fields absent from
// params are left unchanged.
func (s *Recipe) Update(ctx context.Context, accountID, recipeID uuid.UUID, params model.UpdateRecipeParams) (model.Recipe, error) {
	if err := params.Validate(); err != nil {
		return model.Recipe{}, err
	}

	recipe, err := s.Get(ctx, accountID, recipeID)
	if err != nil {
		return model.Recipe{}, err
	}

	params.Apply(&recipe)

	saved, err := s.recipeStore.Update(ctx, recipe)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("failed to update recipe: %w", err)
	}

	return saved, nil
}

// Delete removes the caller's recipe.
func (s *Recipe) Delete(ctx context.Context, accountID, recipeID uuid.UUID) error {
	recipe, err := s.Get(ctx, accountID, recipeID)
	if err != nil {
		return err
	}

	if err := s.recipeStore.Delete(ctx, recipe.ID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	if recipe.ImageKey != "" {
		if err := s.storage.Delete(ctx, recipe.ImageKey); err != nil {
			s.logger.Error("Recipe service: failed to delete recipe image",
				"recipe_id", recipe.ID,
				"image_key", recipe.ImageKey,
				"error", err.Error())
		}
	}

	return nil
}

// UploadImage stores the recipe image and records its object key.
func (s *Recipe) UploadImage(ctx context.Context, accountID, recipeID uuid.UUID, reader io.Reader) (model.Recipe, error) {
	recipe, err := s.Get(ctx, accountID, recipeID)
	if err != nil {
		return model.Recipe{}, err
	}

	key := fmt.Sprintf("recipe_images/%s", recipe.ID)
	if err := s.storage.Upload(ctx, key, reader); err != nil {
		return model.Recipe{}, fmt.Errorf("failed to upload recipe image: %w", err)
	}

	recipe.ImageKey = key
	saved, err := s.recipeStore.Update(ctx, recipe)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("failed to record recipe image key: %w", err)
	}

	return saved, nil
}
