package listing

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// External holds the source-site side of a listing.
type External struct {
	PostalCode     string   `json:"postalCode"`
	URL            string   `json:"url"`
	Platform       string   `json:"platform"`
	ExternalID     string   `json:"externalId"`
	ImageURLs      []string `json:"imageUrls"`
	SellerUsername string   `json:"sellerUsername"`
	SellerRating   float64  `json:"sellerRating"`
	SellerReviews  int      `json:"sellerReviews"`
}

// Record is one normalized classifieds entry in the catalog API's
// external-listing payload shape.
type Record struct {
	Title         string            `json:"title"`
	Price         int               `json:"price"`
	CreatedAt     time.Time         `json:"createdAt"`
	Description   string            `json:"description"`
	Properties    map[string]string `json:"properties"`
	SubCategoryID string            `json:"subCategoryId"`
	External      External          `json:"external"`
}

// ExternalID derives the stable upstream dedup key for a listing: the
// hex MD5 of its canonical source URL. Re-scraping the same ad always
// yields the same id.
func ExternalID(sourceURL string) string {
	sum := md5.Sum([]byte(sourceURL))
	return hex.EncodeToString(sum[:])
}
