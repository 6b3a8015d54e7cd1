package gunpost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/tmarchand/gunindex/internal/listing"
)

const adPage = `<!DOCTYPE html>
<html>
<body>
<div id="rid-sidebar-first">
  <div class="gallery">
    <img src="https://media.gunpost.ca/prod/styles/dad_square/public/1.jpg">
    <img src=" https://media.gunpost.ca/prod/styles/dad_large/public/2.jpg ">
    <img src="https://www.gunpost.ca/themes/logo.png">
    <img alt="no src">
  </div>
  <div class="other"><img src="https://media.gunpost.ca/prod/styles/dad_square/public/ignored.jpg"></div>
</div>
<h1 class="node__title">  Remington 700 SPS 308 Win  </h1>
<div class="price">$750</div>
<div class="post-location">Kingston, ON K7L 4V1</div>
<div class="member-name">oldtimer42</div>
<div class="rating">4.8 (12)</div>
<div class="body">
  <div class="field__item"><p>Well kept, shot little.</p></div>
</div>
<div class="firearm-details">
  <dl>
    <dt>Category</dt>
    <dd><i class="fas fa-angle-right"></i>FirearmsRifles</dd>
    <dt>Caliber</dt>
    <dd><span class="field__item-wrapper">308 Win</span><span class="extra">junk</span></dd>
    <dt>Condition</dt>
    <dd>Used - Good</dd>
  </dl>
  <dl>
    <dt>Hand</dt>
    <dd>Right</dd>
  </dl>
</div>
</body>
</html>`

func docFromString(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestParseAdDetail(t *testing.T) {
	detail := ParseAdDetail(docFromString(t, adPage))

	if detail.Title != "Remington 700 SPS 308 Win" {
		t.Errorf("Title = %q", detail.Title)
	}
	if detail.PriceText != "$750" {
		t.Errorf("PriceText = %q", detail.PriceText)
	}
	if detail.Location != "KINGSTON, ON K7L 4V1" {
		t.Errorf("Location = %q, want upper-cased", detail.Location)
	}
	if detail.Username != "oldtimer42" {
		t.Errorf("Username = %q", detail.Username)
	}
	if detail.Rating != 4.8 || detail.Reviews != 12 {
		t.Errorf("rating = (%v, %d), want (4.8, 12)", detail.Rating, detail.Reviews)
	}
	if !strings.Contains(detail.Description, "Well kept, shot little.") {
		t.Errorf("Description = %q, want the body HTML", detail.Description)
	}

	wantPairs := []listing.Pair{
		{Key: "Category", Value: "FirearmsRifles"},
		{Key: "Caliber", Value: "308 Win"},
		{Key: "Condition", Value: "Used - Good"},
		{Key: "Hand", Value: "Right"},
	}
	if !reflect.DeepEqual(detail.Properties, wantPairs) {
		t.Errorf("Properties = %v, want %v", detail.Properties, wantPairs)
	}

	wantImages := []string{
		"https://media.gunpost.ca/prod/styles/dad_large/public/1.jpg",
		"https://media.gunpost.ca/prod/styles/dad_large/public/2.jpg",
	}
	if !reflect.DeepEqual(detail.ImageURLs, wantImages) {
		t.Errorf("ImageURLs = %v, want %v", detail.ImageURLs, wantImages)
	}
}

func TestParseAdDetail_EmptyPage(t *testing.T) {
	detail := ParseAdDetail(docFromString(t, `<html><body></body></html>`))

	if detail.Title != "" || detail.PriceText != "" || detail.Username != "" {
		t.Errorf("empty page yielded non-empty fields: %+v", detail)
	}
	if detail.Rating != 0 || detail.Reviews != 0 {
		t.Errorf("rating = (%v, %d), want zeros", detail.Rating, detail.Reviews)
	}
	if len(detail.Properties) != 0 || len(detail.ImageURLs) != 0 {
		t.Errorf("expected no properties or images, got %+v", detail)
	}
}

func TestParseRating(t *testing.T) {
	cases := []struct {
		in      string
		rating  float64
		reviews int
	}{
		{"4.8 (12)", 4.8, 12},
		{"5 (1)", 5, 1},
		{"", 0, 0},
		{"no reviews yet", 0, 0},
		{"4.8", 0, 0},
	}
	for _, c := range cases {
		rating, reviews := parseRating(c.in)
		if rating != c.rating || reviews != c.reviews {
			t.Errorf("parseRating(%q) = (%v, %d), want (%v, %d)",
				c.in, rating, reviews, c.rating, c.reviews)
		}
	}
}

const searchPage = `<!DOCTYPE html>
<html><body>
<div class="views-row">
  <a href="/on/toronto/ad/12345">Savage Axis</a>
  <span class="node__pubdate">Aug 19, 2025 - 11:34 PM</span>
</div>
<div class="views-row">
  <a href="https://ads.example.com/sponsored">Sponsored</a>
  <span class="node__pubdate">Aug 19, 2025 - 10:00 AM</span>
</div>
<div class="views-row">
  <a href="/bc/victoria/ad/99">No date here</a>
</div>
</body></html>`

func TestSearchPage(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte(searchPage))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, 1000)
	refs, err := client.SearchPage(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/ads?page=0" {
		t.Errorf("requested %q, want /ads?page=0 for the first page", gotPath)
	}
	want := []AdRef{{
		URL:        srv.URL + "/on/toronto/ad/12345",
		PostedText: "Aug 19, 2025 - 11:34 PM",
	}}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("refs = %v, want %v", refs, want)
	}
}

func TestFetchAd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(adPage))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, 1000)
	ref := AdRef{URL: srv.URL + "/on/toronto/ad/12345", PostedText: "Aug 19, 2025 - 11:34 PM"}
	detail, err := client.FetchAd(context.Background(), ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.URL != ref.URL {
		t.Errorf("URL = %q, want the ref URL", detail.URL)
	}
	if detail.PostedText != ref.PostedText {
		t.Errorf("PostedText = %q, want carried over from the ref", detail.PostedText)
	}
	if detail.Title != "Remington 700 SPS 308 Win" {
		t.Errorf("Title = %q", detail.Title)
	}
}

func TestProbeImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("probe used %s, want HEAD", r.Method)
		}
		if strings.HasSuffix(r.URL.Path, "gone.jpg") {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, 1000)
	if !client.ProbeImage(context.Background(), srv.URL+"/ok.jpg") {
		t.Error("expected reachable image to probe true")
	}
	if client.ProbeImage(context.Background(), srv.URL+"/gone.jpg") {
		t.Error("expected missing image to probe false")
	}
}
