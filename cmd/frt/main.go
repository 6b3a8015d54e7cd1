// Command frt runs the FRT extraction batch: PDF page texts are pulled
// through the resumable chunk cache, grouped into records by reference
// number, extracted, written to disk artifacts, and submitted to the
// catalog API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tmarchand/gunindex/internal/catalog"
	"github.com/tmarchand/gunindex/internal/config"
	"github.com/tmarchand/gunindex/internal/diag"
	"github.com/tmarchand/gunindex/internal/frt"
	"github.com/tmarchand/gunindex/internal/pagecache"
	"github.com/tmarchand/gunindex/internal/pdfpage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reporter := diag.NewSlogReporter(log)
	store := pagecache.NewDirStore(cfg.CacheDir)

	pages, err := loadPages(cfg, store, reporter, log)
	if err != nil {
		log.Error("page extraction failed", "error", err)
		os.Exit(1)
	}
	log.Info("pages loaded", "pages", len(pages))

	groups := frt.GroupPages(pages)
	records := frt.BuildRecords(groups, frt.Countries, reporter)
	log.Info("records built", "groups", len(groups), "records", len(records))

	if cfg.ImagesPath != "" {
		images, err := frt.LoadImages(cfg.ImagesPath)
		if err != nil {
			log.Warn("images sidecar unavailable", "path", cfg.ImagesPath, "error", err)
		} else {
			frt.MergeImages(records, images)
		}
	}

	if err := frt.WriteArtifacts(cfg.OutputDir, records); err != nil {
		log.Error("write artifacts failed", "error", err)
		os.Exit(1)
	}

	client := catalog.NewClient(cfg.CatalogURL, cfg.RequestTimeout, log)
	defer client.Close()
	if err := client.SubmitRecords(ctx, records); err != nil {
		log.Error("catalog submission failed", "error", err)
		os.Exit(1)
	}
	log.Info("batch complete", "records", len(records))
}

// loadPages reconstructs page texts from the chunk cache, opening the
// source PDF only when chunks are missing or corrupt.
func loadPages(cfg config.Config, store pagecache.Store, rep diag.Reporter, log *slog.Logger) ([]string, error) {
	if store.AllChunksPresent(cfg.MaxPages, cfg.ChunkSize) {
		if pages, err := store.LoadAll(); err == nil {
			log.Info("all chunks cached, skipping extraction", "target_pages", cfg.MaxPages)
			return pages, nil
		}
		// A corrupt chunk; EnsurePages keeps the intact prefix and
		// re-extracts the rest.
	}

	pdf, err := pdfpage.Open(cfg.PDFPath)
	if err != nil {
		return nil, err
	}
	defer pdf.Close()

	return pagecache.EnsurePages(store, pdf, cfg.MaxPages, cfg.ChunkSize, rep, log)
}
