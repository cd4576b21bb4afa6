package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/dbx"
	"github.com/dmitrijs2005/recipebook/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	query := `SELECT id, title, description, image_key, ingredients, instructions, user_email, created_at
		FROM recipes WHERE id=$1`

	var item models.Recipe
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Title, &item.Description, &item.ImageKey,
		&item.Ingredients, &item.Instructions, &item.UserEmail, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select recipe: %w", err)
	}
	return &item, nil
}
