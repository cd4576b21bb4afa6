package views

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/recipebook/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipebook/internal/client/services"
	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/stretchr/testify/require"
)

// env wires the views to in-memory stores.
type env struct {
	durable *kvstore.MemoryRepository
	session *kvstore.MemoryRepository
	repo    recipes.Repository

	recipes  services.RecipeService
	sessions services.SessionService
	drafts   services.DraftService
	router   *Router
	log      logging.Logger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	durable := kvstore.NewMemoryRepository()
	session := kvstore.NewMemoryRepository()
	repo := recipes.NewKVRepository(durable)

	return &env{
		durable:  durable,
		session:  session,
		repo:     repo,
		recipes:  services.NewRecipeService(repo),
		sessions: services.NewSessionService(durable),
		drafts:   services.NewDraftService(session),
		router:   NewRouter(),
		log:      logging.NewTextLogger(io.Discard, slog.LevelDebug),
	}
}

func (e *env) login(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, e.sessions.Login(context.Background(), email))
}

func (e *env) seed(t *testing.T, owner, title string) models.Recipe {
	t.Helper()
	r, err := e.repo.Append(context.Background(), models.Recipe{Title: title, Description: title + " desc", UserEmail: owner})
	require.NoError(t, err)
	return r
}

func (e *env) stored(t *testing.T) []models.Recipe {
	t.Helper()
	list, err := e.repo.List(context.Background())
	require.NoError(t, err)
	return list
}
