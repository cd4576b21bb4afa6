// Package recipes provides the PostgreSQL repository of published recipes.
package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipebook/internal/server/models"
)

// Repository reads published recipes.
type Repository interface {
	// Get returns the recipe with id, or common.ErrorNotFound.
	Get(ctx context.Context, id int64) (*models.Recipe, error)
}
