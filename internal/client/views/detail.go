package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/logging"
)

// RecipeFetcher reads one recipe from the remote API.
type RecipeFetcher interface {
	GetRecipe(ctx context.Context, id string) (*models.RemoteRecipe, error)
}

type DetailState int

const (
	DetailLoading DetailState = iota
	DetailLoaded
	DetailNotFound
)

// DetailView shows a recipe fetched from the remote API. A view issues one
// request; a failed request is final.
type DetailView struct {
	api RecipeFetcher
	log logging.Logger

	mu      sync.Mutex
	id      string
	state   DetailState
	recipe  *models.RemoteRecipe
	mounted bool
	closed  bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewDetailView(api RecipeFetcher, log logging.Logger) *DetailView {
	return &DetailView{api: api, log: log}
}

// Mount starts fetching id. Further calls are ignored.
func (v *DetailView) Mount(ctx context.Context, id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.mounted || v.closed {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	v.id, v.mounted, v.state = id, true, DetailLoading
	v.cancel = cancel
	v.done = make(chan struct{})

	go v.fetch(ctx, id, v.done)
}

func (v *DetailView) fetch(ctx context.Context, id string, done chan struct{}) {
	defer close(done)

	r, err := v.api.GetRecipe(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	if err != nil {
		v.log.Warn(ctx, "fetch recipe", "id", id, "error", err)
		v.state = DetailNotFound
		return
	}
	v.recipe = r
	v.state = DetailLoaded
}

// Wait blocks until the request settles or ctx ends.
func (v *DetailView) Wait(ctx context.Context) error {
	v.mu.Lock()
	done := v.done
	v.mu.Unlock()
	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels an in-flight request. A result arriving later is dropped.
func (v *DetailView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *DetailView) State() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Recipe is nil unless the state is DetailLoaded.
func (v *DetailView) Recipe() *models.RemoteRecipe {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.recipe
}

// Message is the text shown instead of the recipe, or "" once loaded.
func (v *DetailView) Message() string {
	switch v.State() {
	case DetailLoading:
		return MsgLoading
	case DetailNotFound:
		return MsgRecipeNotFound
	default:
		return ""
	}
}

func (v *DetailView) EditLink() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return EditPath(v.id)
}
