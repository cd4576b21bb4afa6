// Package api implements the HTTP recipe API consumed by the client detail view.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/dmitrijs2005/recipebook/internal/server/models"
)

// RecipeGetter is the service the handler reads from.
type RecipeGetter interface {
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, string, error)
}

// recipeResponse is the wire shape of GET /api/recipes/{id}.
type recipeResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// Handler serves the recipe API.
type Handler struct {
	recipes RecipeGetter
	logger  logging.Logger
}

func NewHandler(recipes RecipeGetter, logger logging.Logger) *Handler {
	return &Handler{recipes: recipes, logger: logger.With("module", "http_api")}
}

// Routes returns the API mux with /metrics mounted and every route instrumented.
func (h *Handler) Routes(m *Metrics) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/recipes/{id}", h.getRecipe)
	mux.Handle("GET /metrics", m.Handler())
	return m.instrument(mux)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	recipe, imageURL, err := h.recipes.GetRecipe(r.Context(), id)
	if errors.Is(err, common.ErrorNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error(r.Context(), "get recipe failed", "id", id, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(recipeResponse{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Description:  recipe.Description,
		ImageURL:     imageURL,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
	}); err != nil {
		h.logger.Warn(r.Context(), "write response failed", "id", id, "error", err)
	}
}
