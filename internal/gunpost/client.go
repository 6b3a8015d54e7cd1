// Package gunpost fetches and parses gunpost.ca search results and ad
// detail pages into structured views for the listing pipeline.
package gunpost

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// mediaPrefix filters ad images to the site's CDN; anything else in the
// sidebar is navigation chrome.
const mediaPrefix = "https://media.gunpost.ca/prod"

// Client fetches site pages with a politeness rate limit.
type Client struct {
	baseURL    string
	httpClient *http.Client
	probe      *http.Client
	limiter    *rate.Limiter
}

func NewClient(baseURL string, timeout time.Duration, ratePerSec float64) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		probe:      &http.Client{Timeout: 5 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(ratePerSec), 1),
	}
}

func (c *Client) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}

// SearchPage fetches one page of search results and returns refs to the
// ads on it. Rows without a relative ad link or a post date are skipped.
// The site numbers its result pages from zero.
func (c *Client) SearchPage(ctx context.Context, page int) ([]AdRef, error) {
	doc, err := c.fetch(ctx, fmt.Sprintf("%s/ads?page=%d", c.baseURL, page-1))
	if err != nil {
		return nil, err
	}
	var refs []AdRef
	doc.Find("div.views-row").Each(func(_ int, row *goquery.Selection) {
		if ref, ok := c.adRef(row); ok {
			refs = append(refs, ref)
		}
	})
	return refs, nil
}

func (c *Client) adRef(row *goquery.Selection) (AdRef, bool) {
	href, ok := row.Find("a[href]").First().Attr("href")
	if !ok || len(href) == 0 || href[0] != '/' {
		return AdRef{}, false
	}
	pubdate := row.Find("span.node__pubdate").First()
	if pubdate.Length() == 0 {
		return AdRef{}, false
	}
	return AdRef{
		URL:        c.baseURL + href,
		PostedText: trimText(pubdate),
	}, true
}

// FetchAd fetches and parses one ad's detail page.
func (c *Client) FetchAd(ctx context.Context, ref AdRef) (*AdDetail, error) {
	doc, err := c.fetch(ctx, ref.URL)
	if err != nil {
		return nil, err
	}
	detail := ParseAdDetail(doc)
	detail.URL = ref.URL
	detail.PostedText = ref.PostedText
	return detail, nil
}

// ProbeImage checks that an image URL is actually fetchable.
func (c *Client) ProbeImage(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.probe.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
