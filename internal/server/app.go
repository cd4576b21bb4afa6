// Package server wires the recipe API server: PostgreSQL storage, S3 image
// presigning, the HTTP API with Prometheus metrics and the gRPC health
// service, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/dmitrijs2005/recipebook/internal/server/api"
	"github.com/dmitrijs2005/recipebook/internal/server/config"
	"github.com/dmitrijs2005/recipebook/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipebook/internal/server/services"

	gs "github.com/dmitrijs2005/recipebook/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	recipeService *services.RecipeService
}

// openDB is a seam for tests.
var openDB = repomanager.OpenPostgres

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	rm := repomanager.NewPostgresRepositoryManager()

	db, err := openDB(ctx, c.DatabaseDSN, rm)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rs := services.NewRecipeService(db, rm, services.NewS3Presigner(c))

	return &App{config: c, logger: logger, db: db, recipeService: rs}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	handler := api.NewHandler(app.recipeService, app.logger).Routes(api.NewMetrics())
	s := api.NewServer(app.config.HTTPAddr, handler, app.config.ShutdownTimeout, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewHealthServer(app.config.HealthAddr, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a termination signal arrives, ctx is cancelled, or either
// listener fails. The database is closed after both servers have stopped.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
