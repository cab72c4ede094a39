package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ougirez/vaxboard/internal/api"
	"github.com/ougirez/vaxboard/internal/pkg/config"
	"github.com/ougirez/vaxboard/internal/pkg/logger"
	"github.com/ougirez/vaxboard/internal/service/ingest"
	"go.uber.org/zap"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger.Init(zl)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, err)
	}

	// Optional: pull fresh exports from the open-data catalog before loading.
	if cfg.Data.CatalogURL != "" {
		fetcher := ingest.NewFetcher()
		urls, err := fetcher.DiscoverResources(ctx, cfg.Data.CatalogURL)
		if err != nil {
			logger.Fatal(ctx, err)
		}
		if _, err := fetcher.Download(ctx, urls, filepath.Dir(cfg.Data.DosesCSV)); err != nil {
			logger.Fatal(ctx, err)
		}
	}

	snap, err := ingest.NewLoader().Load(ctx, cfg.Data.DosesCSV, cfg.Data.CoverageCSV, cfg.Data.RegionsGeoJSON)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	svc, err := api.NewAPIService(cfg, snap)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(cfg.Server.ListenAddr)
	logger.Infof(ctx, "serving on %s", cfg.Server.ListenAddr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}
