package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecipeStore defines persistence operations for recipes.
type RecipeStore interface {
	Create(ctx context.Context, recipe Recipe) (Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (Recipe, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]Recipe, error)
	Update(ctx context.Context, recipe Recipe) (Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Recipe is owned by exactly one account and is visible only through its
// owner's authenticated context.
type Recipe struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Title        string
	Description  string
	Ingredients  string
	Instructions string
	CookingTime  int
	Difficulty   Difficulty
	ImageKey     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy reports whether the recipe belongs to the given account.
func (r Recipe) OwnedBy(accountID uuid.UUID) bool {
	return r.AccountID == accountID
}

// Difficulty enumerates recipe difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether the value is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// CreateRecipeParams contains parameters to create a recipe.
type CreateRecipeParams struct {
	Title        string
	Description  string
	Ingredients  string
	Instructions string
	CookingTime  int
	Difficulty   Difficulty
}

// Validate checks required recipe fields and value constraints.
func (p CreateRecipeParams) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(p.Title) == "" {
		verr.Add("title", "title is required")
	}
	if p.CookingTime <= 0 {
		verr.Add("cooking_time", "cooking_time must be a positive number of minutes")
	}
	if !p.Difficulty.Valid() {
		verr.Add("difficulty", "difficulty must be one of easy, medium, hard")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// UpdateRecipeParams carries a partial recipe update. Nil fields are left
// untouched.
type UpdateRecipeParams struct {
	Title        *string
	Description  *string
	Ingredients  *string
	Instructions *string
	CookingTime  *int
	Difficulty   *Difficulty
}

// Validate checks value constraints for fields present in the update.
func (p UpdateRecipeParams) Validate() error {
	verr := &ValidationError{}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		verr.Add("title", "title must not be blank")
	}
	if p.CookingTime != nil && *p.CookingTime <= 0 {
		verr.Add("cooking_time", "cooking_time must be a positive number of minutes")
	}
	if p.Difficulty != nil && !p.Difficulty.Valid() {
		verr.Add("difficulty", "difficulty must be one of easy, medium, hard")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// Apply merges present fields onto the recipe.
func (p UpdateRecipeParams) Apply(recipe *Recipe) {
	if p.Title != nil {
		recipe.Title = *p.Title
	}
	if p.Description != nil {
		recipe.Description = *p.Description
	}
	if p.Ingredients != nil {
		recipe.Ingredients = *p.Ingredients
	}
	if p.Instructions != nil {
		recipe.Instructions = *p.Instructions
	}
	if p.CookingTime != nil {
		recipe.CookingTime = *p.CookingTime
	}
	if p.Difficulty != nil {
		recipe.Difficulty = *p.Difficulty
	}
}
