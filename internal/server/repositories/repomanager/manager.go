package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipebook/internal/dbx"
	"github.com/dmitrijs2005/recipebook/internal/server/repositories/recipes"
)

// RepositoryManager vends repositories bound to a connection or transaction
// and owns the schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Recipes(db dbx.DBTX) recipes.Repository
}
