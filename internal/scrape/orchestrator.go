// Package scrape runs the classifieds pipeline: sweep search pages,
// fetch ad details with bounded concurrency, normalize each ad into a
// listing record, and submit it to the catalog. The unit of failure
// isolation is a single listing.
package scrape

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tmarchand/gunindex/internal/diag"
	"github.com/tmarchand/gunindex/internal/gunpost"
	"github.com/tmarchand/gunindex/internal/listing"
)

// Source provides search pages and ad details. *gunpost.Client is the
// production implementation.
type Source interface {
	SearchPage(ctx context.Context, page int) ([]gunpost.AdRef, error)
	FetchAd(ctx context.Context, ref gunpost.AdRef) (*gunpost.AdDetail, error)
	ProbeImage(ctx context.Context, url string) bool
}

// Submitter accepts finished listing batches.
type Submitter interface {
	SubmitListings(ctx context.Context, listings []listing.Record) error
}

// Config bounds the sweep loop.
type Config struct {
	FullSweepPages        int
	IncrementalSweepPages int
	SweepInterval         time.Duration
	DetailWorkers         int
}

// Orchestrator drives the endless sweep loop.
type Orchestrator struct {
	source     Source
	catalog    Submitter
	normalizer *listing.Normalizer
	rep        diag.Reporter
	log        *slog.Logger
	cfg        Config
	stats      *Stats
}

func NewOrchestrator(source Source, catalog Submitter, normalizer *listing.Normalizer, rep diag.Reporter, log *slog.Logger, cfg Config) *Orchestrator {
	return &Orchestrator{
		source:     source,
		catalog:    catalog,
		normalizer: normalizer,
		rep:        rep,
		log:        log,
		cfg:        cfg,
		stats:      &Stats{},
	}
}

// Stats exposes the counters for the status API.
func (o *Orchestrator) Stats() *Stats {
	return o.stats
}

// Run sweeps until the context is cancelled: the first sweep covers the
// full page range, later sweeps only the freshest pages, with a fixed
// delay between sweeps.
func (o *Orchestrator) Run(ctx context.Context) {
	for run := 1; ; run++ {
		pages := o.cfg.FullSweepPages
		if run > 1 {
			pages = o.cfg.IncrementalSweepPages
		}
		o.log.Info("starting sweep", "run", run, "pages", pages)
		o.sweep(ctx, pages)
		o.stats.SweepDone()

		select {
		case <-ctx.Done():
			return
		case <-time.After(o.cfg.SweepInterval):
		}
	}
}

func (o *Orchestrator) sweep(ctx context.Context, pages int) {
	for page := 1; page <= pages; page++ {
		if ctx.Err() != nil {
			return
		}
		refs, err := o.source.SearchPage(ctx, page)
		if err != nil {
			o.log.Error("search page fetch failed", "page", page, "error", err)
			continue
		}
		o.log.Info("sweeping page", "page", page, "ads", len(refs))
		o.processPage(ctx, refs)
		o.stats.PageDone(len(refs))
	}
}

// processPage fans the page's ads out over a bounded worker pool and
// harvests them as they complete. One ad's failure never aborts its
// siblings.
func (o *Orchestrator) processPage(ctx context.Context, refs []gunpost.AdRef) {
	sem := make(chan struct{}, o.cfg.DetailWorkers)
	var wg sync.WaitGroup

	for _, ref := range refs {
		sem <- struct{}{}
		wg.Add(1)
		go func(ref gunpost.AdRef) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := o.processAd(ctx, ref); err != nil {
				o.stats.Failed()
				diag.Warn(o.rep, diag.CodeFetchFailed, "listing failed",
					map[string]any{"url": ref.URL, "error": err.Error()})
			}
		}(ref)
	}
	wg.Wait()
}

// processAd turns one ad ref into a listing record and submits it.
// Unparseable dates and prices skip the ad; unpriced markers (wanted
// ads, trades) skip it silently.
func (o *Orchestrator) processAd(ctx context.Context, ref gunpost.AdRef) error {
	createdAt, ok := listing.ParsePostDate(ref.PostedText)
	if !ok {
		o.stats.Skipped()
		diag.Warn(o.rep, diag.CodeUnparseableValue, "unparseable post date",
			map[string]any{"url": ref.URL, "text": ref.PostedText})
		return nil
	}

	detail, err := o.source.FetchAd(ctx, ref)
	if err != nil {
		return err
	}

	price, ok := listing.ParsePrice(detail.PriceText)
	if !ok {
		o.stats.Skipped()
		if !listing.IsUnpriced(detail.PriceText) {
			diag.Warn(o.rep, diag.CodeUnparseableValue, "unparseable price",
				map[string]any{"url": ref.URL, "text": detail.PriceText})
		}
		return nil
	}

	categoryID, props := o.normalizer.Normalize(detail.Properties)
	postalCode, _ := listing.ExtractPostalCode(detail.Location)

	images := make([]string, 0, len(detail.ImageURLs))
	for _, url := range detail.ImageURLs {
		if o.source.ProbeImage(ctx, url) {
			images = append(images, url)
			continue
		}
		diag.Warn(o.rep, diag.CodeImageUnreachable, "image not fetchable",
			map[string]any{"image": url})
	}

	record := listing.Record{
		Title:         detail.Title,
		Price:         price,
		CreatedAt:     createdAt,
		Description:   detail.Description,
		Properties:    props,
		SubCategoryID: categoryID,
		External: listing.External{
			PostalCode:     postalCode,
			URL:            detail.URL,
			Platform:       "gunpost",
			ExternalID:     listing.ExternalID(detail.URL),
			ImageURLs:      images,
			SellerUsername: detail.Username,
			SellerRating:   detail.Rating,
			SellerReviews:  detail.Reviews,
		},
	}

	if err := o.catalog.SubmitListings(ctx, []listing.Record{record}); err != nil {
		return err
	}
	o.stats.Published()
	o.log.Info("published listing", "title", truncate(detail.Title, 30), "url", detail.URL)
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
