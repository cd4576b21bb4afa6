package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/client/client"
	"github.com/dmitrijs2005/recipebook/internal/client/config"
	"github.com/dmitrijs2005/recipebook/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/recipebook/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipebook/internal/client/services"
	"github.com/dmitrijs2005/recipebook/internal/client/views"
	"github.com/dmitrijs2005/recipebook/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pinger is the part of client.Client the connectivity watcher needs.
type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config *config.Config
	log    logging.Logger

	db      *sql.DB
	api     client.Client
	session *kvstore.SQLiteSessionRepository

	recipes  services.RecipeService
	sessions services.SessionService
	drafts   services.DraftService
	router   *views.Router

	reader      *bufio.Reader
	out         io.Writer
	interactive bool

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the local database, drops session rows left behind by
// earlier processes and connects the API client.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	if n, err := kvstore.PurgeStale(ctx, db, time.Now().Add(-c.SessionTTL)); err != nil {
		log.Warn(ctx, "purge stale sessions", "error", err)
	} else if n > 0 {
		log.Debug(ctx, "purged stale session rows", "rows", n)
	}

	apiClient, err := client.NewAPIClient(c.APIBaseURL, c.HealthAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	session := kvstore.NewSQLiteSessionRepository(db, kvstore.NewSessionID())
	durable := kvstore.NewSQLiteRepository(db)

	a := &App{
		config:      c,
		log:         log.With("session", session.SessionID()),
		db:          db,
		api:         apiClient,
		session:     session,
		recipes:     services.NewRecipeService(recipes.NewSQLiteRepository(db)),
		sessions:    services.NewSessionService(durable),
		drafts:      services.NewDraftService(session),
		router:      views.NewRouter(),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: isTerminal(int(os.Stdin.Fd())),
		mode:        ModeOffline,
	}
	return a, nil
}

// Run blocks in the REPL until the user exits or ctx ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close(context.Background())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.println("Welcome to recipebook (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.interactive)
}

// Close ends the session: its staged draft is dropped.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.session != nil {
		errs = append(errs, a.session.Clear(ctx))
	}
	if a.api != nil {
		errs = append(errs, a.api.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher pings the server every interval and flips Mode
// accordingly. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.watch(ctx, a.api, interval)
}

func (a *App) watch(ctx context.Context, p pinger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := p.Ping(pctx)
		cancel()

		if err != nil {
			a.setMode(ModeOffline)
		} else {
			a.setMode(ModeOnline)
		}
	}

	check()
	for {
		select {
		case <-ticker.C:
			check()
		case <-ctx.Done():
			return
		}
	}
}
