package scrape

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/tmarchand/gunindex/internal/diag"
	"github.com/tmarchand/gunindex/internal/gunpost"
	"github.com/tmarchand/gunindex/internal/listing"
)

type fakeSource struct {
	pages       map[int][]gunpost.AdRef
	details     map[string]*gunpost.AdDetail
	fetchErrs   map[string]error
	deadImages  map[string]bool
	fetchCalls  int
	searchCalls int
}

func (s *fakeSource) SearchPage(_ context.Context, page int) ([]gunpost.AdRef, error) {
	s.searchCalls++
	return s.pages[page], nil
}

func (s *fakeSource) FetchAd(_ context.Context, ref gunpost.AdRef) (*gunpost.AdDetail, error) {
	s.fetchCalls++
	if err := s.fetchErrs[ref.URL]; err != nil {
		return nil, err
	}
	detail := *s.details[ref.URL]
	detail.URL = ref.URL
	detail.PostedText = ref.PostedText
	return &detail, nil
}

func (s *fakeSource) ProbeImage(_ context.Context, url string) bool {
	return !s.deadImages[url]
}

type fakeSubmitter struct {
	batches [][]listing.Record
	err     error
}

func (f *fakeSubmitter) SubmitListings(_ context.Context, listings []listing.Record) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, listings)
	return nil
}

func newTestOrchestrator(source Source, sub Submitter, rep diag.Reporter) *Orchestrator {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	normalizer := listing.NewNormalizer(listing.DefaultTaxonomy(), rep)
	cfg := Config{
		FullSweepPages:        1,
		IncrementalSweepPages: 1,
		SweepInterval:         time.Hour,
		DetailWorkers:         1,
	}
	return NewOrchestrator(source, sub, normalizer, rep, log, cfg)
}

func TestSweep_PublishesListing(t *testing.T) {
	const url = "https://www.gunpost.ca/on/toronto/ad/12345"
	source := &fakeSource{
		pages: map[int][]gunpost.AdRef{
			1: {{URL: url, PostedText: "Aug 19, 2025 - 11:34 PM"}},
		},
		details: map[string]*gunpost.AdDetail{
			url: {
				Title:     "Remington 700 SPS",
				PriceText: "$750",
				Location:  "KINGSTON, ON K7L 4V1",
				Username:  "oldtimer42",
				Rating:    4.8,
				Reviews:   12,
				Properties: []listing.Pair{
					{Key: "Category", Value: "FirearmsRifles"},
					{Key: "Caliber", Value: "9 mm Luger"},
				},
				ImageURLs: []string{
					"https://media.gunpost.ca/prod/styles/dad_large/public/1.jpg",
					"https://media.gunpost.ca/prod/styles/dad_large/public/2.jpg",
				},
			},
		},
		deadImages: map[string]bool{
			"https://media.gunpost.ca/prod/styles/dad_large/public/2.jpg": true,
		},
	}
	sub := &fakeSubmitter{}
	col := &diag.Collector{}
	o := newTestOrchestrator(source, sub, col)

	o.sweep(context.Background(), 1)

	if len(sub.batches) != 1 || len(sub.batches[0]) != 1 {
		t.Fatalf("expected one single-record batch, got %v", sub.batches)
	}
	rec := sub.batches[0][0]

	if rec.Title != "Remington 700 SPS" || rec.Price != 750 {
		t.Errorf("record = %+v", rec)
	}
	if rec.SubCategoryID != "firearms-rifles" {
		t.Errorf("SubCategoryID = %q", rec.SubCategoryID)
	}
	if rec.Properties["caliber"] != "9MM LUGER" {
		t.Errorf("caliber = %q", rec.Properties["caliber"])
	}
	if rec.External.PostalCode != "K7L4V1" {
		t.Errorf("PostalCode = %q", rec.External.PostalCode)
	}
	if rec.External.Platform != "gunpost" {
		t.Errorf("Platform = %q", rec.External.Platform)
	}
	if rec.External.ExternalID != listing.ExternalID(url) {
		t.Errorf("ExternalID = %q", rec.External.ExternalID)
	}
	wantImages := []string{"https://media.gunpost.ca/prod/styles/dad_large/public/1.jpg"}
	if !reflect.DeepEqual(rec.External.ImageURLs, wantImages) {
		t.Errorf("ImageURLs = %v, want the unreachable one dropped", rec.External.ImageURLs)
	}
	if col.Count(diag.CodeImageUnreachable) != 1 {
		t.Errorf("expected one image-unreachable diagnostic, got %d", col.Count(diag.CodeImageUnreachable))
	}

	snap := o.Stats().Snapshot()
	if snap.Published != 1 || snap.Skipped != 0 || snap.Failed != 0 {
		t.Errorf("stats = %+v", snap)
	}
	if snap.Pages != 1 || snap.AdsSeen != 1 {
		t.Errorf("stats = %+v", snap)
	}
}

func TestSweep_SkipsUnparseableDate(t *testing.T) {
	source := &fakeSource{
		pages: map[int][]gunpost.AdRef{
			1: {{URL: "https://www.gunpost.ca/ad/1", PostedText: "yesterday"}},
		},
	}
	sub := &fakeSubmitter{}
	col := &diag.Collector{}
	o := newTestOrchestrator(source, sub, col)

	o.sweep(context.Background(), 1)

	if source.fetchCalls != 0 {
		t.Error("ad with an unparseable date must not be fetched")
	}
	if len(sub.batches) != 0 {
		t.Error("nothing should have been submitted")
	}
	if col.Count(diag.CodeUnparseableValue) != 1 {
		t.Errorf("expected one unparseable-value diagnostic, got %d", col.Count(diag.CodeUnparseableValue))
	}
	if snap := o.Stats().Snapshot(); snap.Skipped != 1 {
		t.Errorf("stats = %+v", snap)
	}
}

func TestSweep_UnpricedSkippedSilently(t *testing.T) {
	const url = "https://www.gunpost.ca/ad/2"
	source := &fakeSource{
		pages: map[int][]gunpost.AdRef{
			1: {{URL: url, PostedText: "2025-08-19"}},
		},
		details: map[string]*gunpost.AdDetail{
			url: {Title: "WTB left-handed rifle", PriceText: "Wanted"},
		},
	}
	sub := &fakeSubmitter{}
	col := &diag.Collector{}
	o := newTestOrchestrator(source, sub, col)

	o.sweep(context.Background(), 1)

	if len(sub.batches) != 0 {
		t.Error("unpriced listing should not be submitted")
	}
	if len(col.Events) != 0 {
		t.Errorf("unpriced markers are not anomalies, got %v", col.Events)
	}
	if snap := o.Stats().Snapshot(); snap.Skipped != 1 {
		t.Errorf("stats = %+v", snap)
	}
}

func TestSweep_UnparseablePriceWarns(t *testing.T) {
	const url = "https://www.gunpost.ca/ad/3"
	source := &fakeSource{
		pages: map[int][]gunpost.AdRef{
			1: {{URL: url, PostedText: "2025-08-19"}},
		},
		details: map[string]*gunpost.AdDetail{
			url: {Title: "Mystery", PriceText: "make me an offer"},
		},
	}
	sub := &fakeSubmitter{}
	col := &diag.Collector{}
	o := newTestOrchestrator(source, sub, col)

	o.sweep(context.Background(), 1)

	if len(sub.batches) != 0 {
		t.Error("unparseable price should not be submitted")
	}
	if col.Count(diag.CodeUnparseableValue) != 1 {
		t.Errorf("expected one unparseable-value diagnostic, got %d", col.Count(diag.CodeUnparseableValue))
	}
}

func TestSweep_FetchFailureCounted(t *testing.T) {
	const url = "https://www.gunpost.ca/ad/4"
	source := &fakeSource{
		pages: map[int][]gunpost.AdRef{
			1: {{URL: url, PostedText: "2025-08-19"}},
		},
		fetchErrs: map[string]error{url: errors.New("connection reset")},
	}
	sub := &fakeSubmitter{}
	col := &diag.Collector{}
	o := newTestOrchestrator(source, sub, col)

	o.sweep(context.Background(), 1)

	if col.Count(diag.CodeFetchFailed) != 1 {
		t.Errorf("expected one fetch-failed diagnostic, got %d", col.Count(diag.CodeFetchFailed))
	}
	if snap := o.Stats().Snapshot(); snap.Failed != 1 || snap.Published != 0 {
		t.Errorf("stats = %+v", snap)
	}
}

func TestSweep_SubmitFailureCounted(t *testing.T) {
	const url = "https://www.gunpost.ca/ad/5"
	source := &fakeSource{
		pages: map[int][]gunpost.AdRef{
			1: {{URL: url, PostedText: "2025-08-19"}},
		},
		details: map[string]*gunpost.AdDetail{
			url: {Title: "Savage Axis", PriceText: "$500"},
		},
	}
	sub := &fakeSubmitter{err: errors.New("catalog down")}
	col := &diag.Collector{}
	o := newTestOrchestrator(source, sub, col)

	o.sweep(context.Background(), 1)

	if snap := o.Stats().Snapshot(); snap.Failed != 1 || snap.Published != 0 {
		t.Errorf("stats = %+v", snap)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 30, "short"},
		{"exactly sixteen!", 16, "exactly sixteen!"},
		{"a long enough title to cut off", 10, "a long eno..."},
		{"Carabine Chassepot modèle 1866 très propre", 25, "Carabine Chassepot modèle..."},
		{"винтовка Мосина 7.62x54R", 8, "винтовка..."},
	}
	for _, c := range cases {
		got := truncate(c.in, c.n)
		if got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) = %q, not valid UTF-8", c.in, c.n, got)
		}
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	source := &fakeSource{pages: map[int][]gunpost.AdRef{}}
	o := newTestOrchestrator(source, &fakeSubmitter{}, diag.Discard{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		o.Run(ctx)
		close(done)
	}()

	// Give the first sweep time to finish, then cancel during the wait.
	deadline := time.After(2 * time.Second)
	for o.Stats().Snapshot().Sweeps == 0 {
		select {
		case <-deadline:
			t.Fatal("first sweep never completed")
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
	if source.searchCalls != 1 {
		t.Errorf("expected exactly the full sweep's one search call, got %d", source.searchCalls)
	}
}
