package recipes

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/recipebook/internal/dbx"
)

var (
	_ Repository = (*KVRepository)(nil)
	_ Repository = (*SQLiteRepository)(nil)
)

// SQLiteRepository runs every read-modify-write of the collection inside one
// SQLite transaction, so two clients sharing a database file do not lose
// each other's updates.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) inTx(ctx context.Context, fn func(ctx context.Context, repo *KVRepository) error) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewKVRepository(kvstore.NewSQLiteRepository(tx))
		repo.now = r.now
		return fn(ctx, repo)
	})
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Recipe, error) {
	return NewKVRepository(kvstore.NewSQLiteRepository(r.db)).List(ctx)
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	return NewKVRepository(kvstore.NewSQLiteRepository(r.db)).Get(ctx, id)
}

func (r *SQLiteRepository) Append(ctx context.Context, rec models.Recipe) (models.Recipe, error) {
	var out models.Recipe
	err := r.inTx(ctx, func(ctx context.Context, repo *KVRepository) error {
		var err error
		out, err = repo.Append(ctx, rec)
		return err
	})
	return out, err
}

func (r *SQLiteRepository) Update(ctx context.Context, rec models.Recipe) error {
	return r.inTx(ctx, func(ctx context.Context, repo *KVRepository) error {
		return repo.Update(ctx, rec)
	})
}

func (r *SQLiteRepository) Remove(ctx context.Context, id int64) (bool, error) {
	var removed bool
	err := r.inTx(ctx, func(ctx context.Context, repo *KVRepository) error {
		var err error
		removed, err = repo.Remove(ctx, id)
		return err
	})
	return removed, err
}
