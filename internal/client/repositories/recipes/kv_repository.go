package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/recipebook/internal/common"
)

// KVRepository keeps the collection in a kvstore.Repository. Mutations are
// serialized within the process; callers that share the underlying store
// across processes wrap each call in a transaction (see SQLiteRepository).
type KVRepository struct {
	mu    sync.Mutex
	store kvstore.Repository
	now   func() time.Time
}

func NewKVRepository(store kvstore.Repository) *KVRepository {
	return &KVRepository{store: store, now: time.Now}
}

// NewMemoryRepository returns a KVRepository over an in-memory store.
func NewMemoryRepository() *KVRepository {
	return NewKVRepository(kvstore.NewMemoryRepository())
}

func (r *KVRepository) load(ctx context.Context) ([]models.Recipe, error) {
	raw, err := r.store.Get(ctx, common.RecipesKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var list []models.Recipe
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", common.RecipesKey, err)
	}
	return list, nil
}

func (r *KVRepository) save(ctx context.Context, list []models.Recipe) error {
	if list == nil {
		list = []models.Recipe{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", common.RecipesKey, err)
	}
	return r.store.Set(ctx, common.RecipesKey, raw)
}

func (r *KVRepository) List(ctx context.Context) ([]models.Recipe, error) {
	return r.load(ctx)
}

func (r *KVRepository) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(list, func(x models.Recipe) bool { return x.ID == id })
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	return &list[i], nil
}

// Append stores rec with a freshly generated id and returns the stored record.
func (r *KVRepository) Append(ctx context.Context, rec models.Recipe) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	rec.ID = NextID(r.now(), list)
	list = append(list, rec)

	if err := r.save(ctx, list); err != nil {
		return models.Recipe{}, err
	}
	return rec, nil
}

func (r *KVRepository) Update(ctx context.Context, rec models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(list, func(x models.Recipe) bool { return x.ID == rec.ID })
	if i < 0 {
		return common.ErrorNotFound
	}
	list[i] = rec

	return r.save(ctx, list)
}

func (r *KVRepository) Remove(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	n := len(list)
	list = slices.DeleteFunc(list, func(x models.Recipe) bool { return x.ID == id })
	if len(list) == n {
		return false, nil
	}

	if err := r.save(ctx, list); err != nil {
		return false, err
	}
	return true, nil
}

// NextID returns max(now in ms, largest existing id + 1), so ids stay unique
// even when two records are created within the same millisecond.
func NextID(now time.Time, list []models.Recipe) int64 {
	id := now.UnixMilli()
	for _, x := range list {
		if x.ID >= id {
			id = x.ID + 1
		}
	}
	return id
}
