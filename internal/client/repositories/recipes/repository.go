// Package recipes stores the recipe collection as one JSON array under the
// "recipes" key of a key-value store.
package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

// Repository is the recipe collection.
//
// Get and Update return common.ErrorNotFound for an unknown id. Remove of an
// unknown id reports false and no error.
type Repository interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Get(ctx context.Context, id int64) (*models.Recipe, error)
	Append(ctx context.Context, r models.Recipe) (models.Recipe, error)
	Update(ctx context.Context, r models.Recipe) error
	Remove(ctx context.Context, id int64) (bool, error)
}
