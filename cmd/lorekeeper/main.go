package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/lorekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/lorekeeper/internal/client/cli"
	"github.com/dmitrijs2005/lorekeeper/internal/client/client"
	"github.com/dmitrijs2005/lorekeeper/internal/client/config"
	"github.com/dmitrijs2005/lorekeeper/internal/client/services"
	"github.com/dmitrijs2005/lorekeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr)

	httpClient := client.NewHTTPClient(cfg.RequestTimeout)
	defer httpClient.Close()

	catalog := services.NewCatalogService(httpClient, cfg.BaseURL, log)
	app := cli.NewApp(cfg, catalog, log)

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "critical error, exiting", "err", err)
		stop()
		os.Exit(1)
	}
}
