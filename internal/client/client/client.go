package client

import (
	"context"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

type Client interface {
	Close() error
	GetRecipe(ctx context.Context, id string) (*models.RemoteRecipe, error)
	Ping(ctx context.Context) error
}
