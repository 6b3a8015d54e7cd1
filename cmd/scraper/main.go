// Command scraper runs the classifieds daemon: an endless sweep over
// gunpost search pages publishing normalized listings to the catalog,
// with a small HTTP surface for health and sweep stats.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmarchand/gunindex/internal/api"
	"github.com/tmarchand/gunindex/internal/catalog"
	"github.com/tmarchand/gunindex/internal/config"
	"github.com/tmarchand/gunindex/internal/diag"
	"github.com/tmarchand/gunindex/internal/gunpost"
	"github.com/tmarchand/gunindex/internal/listing"
	"github.com/tmarchand/gunindex/internal/scrape"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reporter := diag.NewSlogReporter(log)

	source := gunpost.NewClient(cfg.GunpostBaseURL, cfg.RequestTimeout, cfg.FetchRatePerSec)
	client := catalog.NewClient(cfg.CatalogURL, cfg.RequestTimeout, log)
	normalizer := listing.NewNormalizer(listing.DefaultTaxonomy(), reporter)

	orch := scrape.NewOrchestrator(source, client, normalizer, reporter, log, scrape.Config{
		FullSweepPages:        cfg.FullSweepPages,
		IncrementalSweepPages: cfg.IncrementalSweepPages,
		SweepInterval:         cfg.SweepInterval,
		DetailWorkers:         cfg.DetailWorkers,
	})
	go orch.Run(ctx)

	srv := api.NewServer(orch.Stats(), log)
	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		client.Close()
	}()

	log.Info("starting scraper", "addr", cfg.ListenAddr, "base_url", cfg.GunpostBaseURL)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
