package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/recipebook/internal/buildinfo"
	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/dmitrijs2005/recipebook/internal/server"
	"github.com/dmitrijs2005/recipebook/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogBackend, os.Stdout, cfg.Debug)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app.Run(ctx)
}
