package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/easyeats/easyeats-server/internal/model"
)

func TestNewAccountRepository(t *testing.T) {
	db := &Connection{}
	repo := NewAccountRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewProfileRepository(t *testing.T) {
	db := &Connection{}
	repo := NewProfileRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewRecipeRepository(t *testing.T) {
	db := &Connection{}
	repo := NewRecipeRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestRepositories_ImplementStores(t *testing.T) {
	var _ model.AccountStore = (*AccountRepository)(nil)
	var _ model.ProfileStore = (*ProfileRepository)(nil)
	var _ model.RecipeStore = (*RecipeRepository)(nil)
}
