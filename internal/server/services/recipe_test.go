package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/dbx"
	"github.com/dmitrijs2005/recipebook/internal/server/models"
	"github.com/dmitrijs2005/recipebook/internal/server/repositories/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipes struct {
	byID map[int64]*models.Recipe
	err  error
}

func (f *fakeRecipes) Get(_ context.Context, id int64) (*models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r, nil
}

type fakeManager struct{ repo recipes.Repository }

func (m fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m fakeManager) Recipes(dbx.DBTX) recipes.Repository         { return m.repo }

type fakePresigner struct {
	calls []string
	err   error
}

func (p *fakePresigner) PresignGet(_ context.Context, key string) (string, error) {
	p.calls = append(p.calls, key)
	if p.err != nil {
		return "", p.err
	}
	return "https://cdn/" + key, nil
}

func newService(t *testing.T, repo recipes.Repository, p ImagePresigner) *RecipeService {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRecipeService(db, fakeManager{repo: repo}, p)
}

func TestRecipeService_GetRecipe(t *testing.T) {
	repo := &fakeRecipes{byID: map[int64]*models.Recipe{
		1: {ID: 1, Title: "Plain"},
		2: {ID: 2, Title: "Pictured", ImageKey: "img/2.png"},
	}}

	t.Run("without image", func(t *testing.T) {
		p := &fakePresigner{}
		r, url, err := newService(t, repo, p).GetRecipe(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Plain", r.Title)
		assert.Empty(t, url)
		assert.Empty(t, p.calls, "no presign without an image key")
	})

	t.Run("with image", func(t *testing.T) {
		p := &fakePresigner{}
		r, url, err := newService(t, repo, p).GetRecipe(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), r.ID)
		assert.Equal(t, "https://cdn/img/2.png", url)
		assert.Equal(t, []string{"img/2.png"}, p.calls)
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := newService(t, repo, &fakePresigner{}).GetRecipe(context.Background(), 9)
		require.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("presign failure", func(t *testing.T) {
		boom := errors.New("boom")
		_, _, err := newService(t, repo, &fakePresigner{err: boom}).GetRecipe(context.Background(), 2)
		require.ErrorIs(t, err, boom)
		require.ErrorIs(t, err, common.ErrorInternal)
		assert.Contains(t, err.Error(), "img/2.png")
	})

	t.Run("repository failure", func(t *testing.T) {
		boom := errors.New("db down")
		_, _, err := newService(t, &fakeRecipes{err: boom}, &fakePresigner{}).GetRecipe(context.Background(), 1)
		require.ErrorIs(t, err, boom)
	})
}
