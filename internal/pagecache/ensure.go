package pagecache

import (
	"fmt"
	"log/slog"

	"github.com/tmarchand/gunindex/internal/diag"
)

// Provider supplies raw page texts. Implementations sit over a PDF
// extraction library or any other per-page text source.
type Provider interface {
	PageCount() int
	// PageText returns the plain text of the zero-based page index.
	// Pages that cannot be extracted yield an empty string.
	PageText(i int) (string, error)
}

// EnsurePages returns the page texts for the first targetPages pages,
// extracting from the provider only the chunk ranges not already cached.
// Intact chunks are never re-extracted, even if the source has changed
// since; staleness is accepted in exchange for idempotent re-runs. A
// corrupt chunk ends the cached prefix: the pages loaded before it are
// retained and extraction resumes from the bad chunk, overwriting it.
func EnsurePages(store Store, provider Provider, targetPages, chunkSize int, rep diag.Reporter, log *slog.Logger) ([]string, error) {
	if store.AllChunksPresent(targetPages, chunkSize) {
		if pages, err := store.LoadAll(); err == nil {
			log.Info("all chunks cached, skipping extraction", "target_pages", targetPages)
			return pages, nil
		}
	}

	existing, err := store.LoadAll()
	corrupt := err != nil
	if corrupt {
		diag.Warn(rep, diag.CodeCacheCorrupt, "corrupt chunk cache, re-extracting from last good chunk",
			map[string]any{"pages_retained": len(existing), "error": err.Error()})
	}
	if !corrupt && len(existing) >= targetPages {
		log.Info("using cached pages", "pages", len(existing))
		return existing, nil
	}

	if len(existing) > 0 {
		log.Info("resuming extraction", "cached", len(existing), "target", targetPages)
	} else {
		log.Info("no cached pages, extracting from source", "target", targetPages)
	}

	total := provider.PageCount()
	target := min(targetPages, total)

	startChunk := len(existing)/chunkSize + 1
	endChunk := (target + chunkSize - 1) / chunkSize

	for num := startChunk; num <= endChunk; num++ {
		// After corruption nothing past the retained prefix is trusted,
		// so chunks there are rewritten rather than skipped.
		if !corrupt && store.HasChunk(num) {
			log.Info("chunk already cached, skipping", "chunk", num)
			continue
		}

		chunkStart := (num - 1) * chunkSize
		chunkEnd := min(chunkStart+chunkSize, target)
		log.Info("extracting chunk", "chunk", num, "pages", fmt.Sprintf("%d-%d", chunkStart+1, chunkEnd))

		chunk := make([]string, 0, chunkEnd-chunkStart)
		for i := chunkStart; i < chunkEnd; i++ {
			text, err := provider.PageText(i)
			if err != nil {
				text = ""
			}
			chunk = append(chunk, text)
		}

		if err := store.SaveChunk(chunk, num); err != nil {
			return nil, fmt.Errorf("save chunk %d: %w", num, err)
		}
	}

	pages, err := store.LoadAll()
	if err != nil {
		diag.Warn(rep, diag.CodeCacheCorrupt, "corrupt chunk beyond extraction range, keeping loaded pages",
			map[string]any{"pages_retained": len(pages), "error": err.Error()})
	}
	return pages, nil
}
