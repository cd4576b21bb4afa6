package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/server/models"
	"github.com/dmitrijs2005/recipebook/internal/server/repositories/repomanager"
)

// RecipeService serves published recipes together with their image URLs.
type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	presigner   ImagePresigner
}

func NewRecipeService(db *sql.DB, repomanager repomanager.RepositoryManager, presigner ImagePresigner) *RecipeService {
	return &RecipeService{
		db:          db,
		repomanager: repomanager,
		presigner:   presigner,
	}
}

// GetRecipe loads recipe id and presigns its image. The URL is empty when the
// recipe has no image. Missing recipes yield common.ErrorNotFound.
func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (*models.Recipe, string, error) {
	recipe, err := s.repomanager.Recipes(s.db).Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if recipe.ImageKey == "" {
		return recipe, "", nil
	}

	url, err := s.presigner.PresignGet(ctx, recipe.ImageKey)
	if err != nil {
		return nil, "", fmt.Errorf("%w: presign image %q: %w", common.ErrorInternal, recipe.ImageKey, err)
	}
	return recipe, url, nil
}
