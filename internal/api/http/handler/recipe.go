package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/easyeats/easyeats-server/internal/api/http/response"
	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
)

// RecipeService defines ownership-scoped recipe operations.
type RecipeService interface {
	List(ctx context.Context, accountID uuid.UUID) ([]model.Recipe, error)
	Get(ctx context.Context, accountID, recipeID uuid.UUID) (model.Recipe, error)
	Create(ctx context.Context, accountID uuid.UUID, params model.CreateRecipeParams) (model.Recipe, error)
	Update(ctx context.Context, accountID, recipeID uuid.UUID, params model.UpdateRecipeParams) (model.Recipe, error)
	Delete(ctx context.Context, accountID, recipeID uuid.UUID) error
	UploadImage(ctx context.Context, accountID, recipeID uuid.UUID, reader io.Reader) (model.Recipe, error)
}

// Recipe handles the /api/recipes collection.
type Recipe struct {
	recipeService  RecipeService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewRecipe creates a new Recipe handler.
func NewRecipe(recipeService RecipeService, contextManager model.ContextManager, logger *logger.Logger) *Recipe {
	return &Recipe{
		recipeService:  recipeService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createRecipeRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	CookingTime  int    `json:"cooking_time"`
	Difficulty   string `json:"difficulty"`
}

type updateRecipeRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
	CookingTime  *int    `json:"cooking_time"`
	Difficulty   *string `json:"difficulty"`
}

type recipeResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	CookingTime  int       `json:"cooking_time"`
	Difficulty   string    `json:"difficulty"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

func toRecipeResponse(rec model.Recipe) recipeResponse {
	return recipeResponse{
		ID:           rec.ID,
		Title:        rec.Title,
		Description:  rec.Description,
		Ingredients:  rec.Ingredients,
		Instructions: rec.Instructions,
		CookingTime:  rec.CookingTime,
		Difficulty:   string(rec.Difficulty),
		Image:        rec.ImageKey,
		CreatedAt:    formatTime(rec.CreatedAt),
		UpdatedAt:    formatTime(rec.UpdatedAt),
	}
}

// List returns the caller's recipes.
func (h *Recipe) List(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	recipes, err := h.recipeService.List(r.Context(), accountID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	out := make([]recipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, toRecipeResponse(rec))
	}
	response.JSON(w, http.StatusOK, out)
}

// Get returns one of the caller's recipes by id.
func (h *Recipe) Get(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	recipeID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	recipe, err := h.recipeService.Get(r.Context(), accountID, recipeID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, toRecipeResponse(recipe))
}

// Create creates a recipe owned by the caller. Any owner hint in the payload
// is ignored.
func (h *Recipe) Create(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	var req createRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, h.logger, err)
		return
	}

	recipe, err := h.recipeService.Create(r.Context(), accountID, model.CreateRecipeParams{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		Difficulty:   model.Difficulty(req.Difficulty),
	})
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, toRecipeResponse(recipe))
}

// Update partially updates one of the caller's recipes.
func (h *Recipe) Update(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	recipeID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	var req updateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, h.logger, err)
		return
	}

	params := model.UpdateRecipeParams{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
	}
	if req.Difficulty != nil {
		difficulty := model.Difficulty(*req.Difficulty)
		params.Difficulty = &difficulty
	}

	recipe, err := h.recipeService.Update(r.Context(), accountID, recipeID, params)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, toRecipeResponse(recipe))
}

// Delete removes one of the caller's recipes.
func (h *Recipe) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	recipeID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	if err := h.recipeService.Delete(r.Context(), accountID, recipeID); err != nil {
		response.Error(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadImage stores a recipe image from the request body.
func (h *Recipe) UploadImage(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	recipeID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	recipe, err := h.recipeService.UploadImage(r.Context(), accountID, recipeID, r.Body)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, toRecipeResponse(recipe))
}
