package recipes

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE local_storage (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	return db
}

// implementations runs the same contract against both repositories.
func implementations(t *testing.T) map[string]Repository {
	return map[string]Repository{
		"memory": NewMemoryRepository(),
		"sqlite": NewSQLiteRepository(newSQLiteDB(t)),
	}
}

func TestRepository_EmptyCollection(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			list, err := repo.List(context.Background())
			require.NoError(t, err)
			require.Empty(t, list)

			_, err = repo.Get(context.Background(), 1)
			require.ErrorIs(t, err, common.ErrorNotFound)
		})
	}
}

func TestRepository_AppendGetUpdateRemove(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			a, err := repo.Append(ctx, models.Recipe{Title: "Tacos", Description: "Spicy", UserEmail: "a@b.com"})
			require.NoError(t, err)
			b, err := repo.Append(ctx, models.Recipe{Title: "Soup", Description: "Hot", UserEmail: "c@d.com"})
			require.NoError(t, err)
			require.NotEqual(t, a.ID, b.ID)

			got, err := repo.Get(ctx, a.ID)
			require.NoError(t, err)
			if diff := cmp.Diff(a, *got); diff != "" {
				t.Fatalf("Get mismatch (-want +got):\n%s", diff)
			}

			a.Title = "Fish tacos"
			require.NoError(t, repo.Update(ctx, a))

			require.ErrorIs(t, repo.Update(ctx, models.Recipe{ID: -1}), common.ErrorNotFound)

			removed, err := repo.Remove(ctx, b.ID)
			require.NoError(t, err)
			require.True(t, removed)

			removed, err = repo.Remove(ctx, b.ID)
			require.NoError(t, err)
			require.False(t, removed)

			list, err := repo.List(ctx)
			require.NoError(t, err)
			require.Equal(t, []models.Recipe{a}, list)
		})
	}
}

func TestRepository_PersistedShape(t *testing.T) {
	store := kvstore.NewMemoryRepository()
	repo := NewKVRepository(store)
	repo.now = func() time.Time { return time.UnixMilli(1700000000000) }

	_, err := repo.Append(context.Background(), models.Recipe{Title: "Tacos", Description: "Spicy", UserEmail: "a@b.com"})
	require.NoError(t, err)

	raw, err := store.Get(context.Background(), common.RecipesKey)
	require.NoError(t, err)
	require.JSONEq(t,
		`[{"id":1700000000000,"title":"Tacos","description":"Spicy","image":null,"userEmail":"a@b.com"}]`,
		string(raw))
}

func TestRepository_RemoveLastLeavesEmptyArray(t *testing.T) {
	store := kvstore.NewMemoryRepository()
	repo := NewKVRepository(store)
	ctx := context.Background()

	r, err := repo.Append(ctx, models.Recipe{Title: "x", Description: "y"})
	require.NoError(t, err)
	_, err = repo.Remove(ctx, r.ID)
	require.NoError(t, err)

	raw, err := store.Get(ctx, common.RecipesKey)
	require.NoError(t, err)
	require.Equal(t, "[]", string(raw))
}

func TestRepository_CorruptCollection(t *testing.T) {
	store := kvstore.NewMemoryRepository()
	require.NoError(t, store.Set(context.Background(), common.RecipesKey, []byte("{oops")))

	_, err := NewKVRepository(store).List(context.Background())
	require.ErrorContains(t, err, "failed to decode recipes")
}

func TestNextID(t *testing.T) {
	now := time.UnixMilli(1000)

	tests := []struct {
		name string
		list []models.Recipe
		want int64
	}{
		{"empty uses clock", nil, 1000},
		{"older ids use clock", []models.Recipe{{ID: 10}, {ID: 999}}, 1000},
		{"same millisecond bumps", []models.Recipe{{ID: 1000}}, 1001},
		{"future ids bump past max", []models.Recipe{{ID: 5000}, {ID: 4000}}, 5001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextID(now, tt.list))
		})
	}
}

func TestSQLiteRepository_SameMillisecondIDsUnique(t *testing.T) {
	repo := NewSQLiteRepository(newSQLiteDB(t))
	repo.now = func() time.Time { return time.UnixMilli(42) }
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Append(ctx, models.Recipe{Title: "t", Description: "d"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 10)

	seen := make(map[int64]bool)
	for _, r := range list {
		require.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
}
