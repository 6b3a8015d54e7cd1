package gunpost

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tmarchand/gunindex/internal/listing"
)

// AdRef points at one ad found on a search-results page.
type AdRef struct {
	URL        string
	PostedText string
}

// AdDetail is the structured view of one ad detail page. Fields that the
// page does not carry are empty; the pipeline decides what is fatal.
type AdDetail struct {
	URL         string
	PostedText  string
	Title       string
	PriceText   string
	Location    string
	Description string
	Username    string
	Rating      float64
	Reviews     int
	Properties  []listing.Pair
	ImageURLs   []string
}

// ParseAdDetail pulls the structured fields out of an ad page's DOM.
func ParseAdDetail(doc *goquery.Document) *AdDetail {
	detail := &AdDetail{
		Title:     trimText(doc.Find("h1.node__title").First()),
		PriceText: trimText(doc.Find("div.price").First()),
		Location:  strings.ToUpper(trimText(doc.Find("div.post-location").First())),
		Username:  trimText(doc.Find("div.member-name").First()),
	}

	if body := doc.Find("div.body div.field__item").First(); body.Length() > 0 {
		if html, err := goquery.OuterHtml(body); err == nil {
			detail.Description = html
		}
	}

	detail.Rating, detail.Reviews = parseRating(trimText(doc.Find("div.rating").First()))
	detail.Properties = parseDetailPairs(doc)
	detail.ImageURLs = parseImageURLs(doc)

	return detail
}

// parseRating splits "4.8 (12)" into a rating and a review count.
// Anything else yields zeros.
func parseRating(text string) (float64, int) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return 0, 0
	}
	rating, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0
	}
	count := strings.TrimSuffix(strings.TrimPrefix(parts[1], "("), ")")
	reviews, err := strconv.Atoi(count)
	if err != nil {
		return 0, 0
	}
	return rating, reviews
}

// parseDetailPairs walks the firearm-details definition lists into
// ordered (label, value) pairs.
func parseDetailPairs(doc *goquery.Document) []listing.Pair {
	var pairs []listing.Pair
	doc.Find("div.firearm-details dl").Each(func(_ int, dl *goquery.Selection) {
		dl.Find("dt").Each(func(_ int, dt *goquery.Selection) {
			dd := dt.NextFiltered("dd")
			if dd.Length() == 0 {
				return
			}
			var value string
			if wrapper := dd.Find("span.field__item-wrapper").First(); wrapper.Length() > 0 {
				value = trimText(wrapper)
			} else {
				// Drop icon markup (e.g. the angle-right glyph) before
				// reading the value text.
				dd.Find("i").Remove()
				value = trimText(dd)
			}
			pairs = append(pairs, listing.Pair{Key: trimText(dt), Value: value})
		})
	})
	return pairs
}

// parseImageURLs collects the ad's gallery images from the first sidebar
// block, keeping only CDN-hosted sources and swapping the square
// thumbnail variant for the large one.
func parseImageURLs(doc *goquery.Document) []string {
	var urls []string
	sidebar := doc.Find("#rid-sidebar-first div").First()
	sidebar.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok {
			return
		}
		src = strings.TrimSpace(src)
		if !strings.HasPrefix(src, mediaPrefix) {
			return
		}
		src = strings.Replace(src, "dad_square", "dad_large", 1)
		urls = append(urls, src)
	})
	return urls
}

func trimText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
