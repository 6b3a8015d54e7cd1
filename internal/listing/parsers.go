package listing

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonPriceChars = regexp.MustCompile(`[^0-9.,-]`)

// ParsePrice parses a free-text price like "$1,234.56" into whole dollars,
// truncating cents. "FREE" in any casing is a legitimate zero price.
// ok is false when the text holds no parseable amount; callers distinguish
// that from a real 0.
func ParsePrice(text string) (price int, ok bool) {
	if text == "" {
		return 0, false
	}
	cleaned := strings.ToUpper(strings.TrimSpace(text))
	if strings.Contains(cleaned, "FREE") {
		return 0, true
	}
	cleaned = nonPriceChars.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	switch cleaned {
	case "", ".", "-", "-.":
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return int(value), true
}

// IsUnpriced reports whether the price text is one of the site's
// recognized no-price markers. These listings are skipped without a
// diagnostic; they are not parse failures.
func IsUnpriced(text string) bool {
	switch strings.TrimSpace(text) {
	case "Wanted", "Call for Price", "Swap / Trade":
		return true
	}
	return false
}

var postedPrefix = regexp.MustCompile(`Posted:\s*(.+)`)

// postDateFormats in precedence order; first parse wins.
var postDateFormats = []string{
	"Jan 2, 2006 - 3:04 PM",
	"2006-01-02",
	"Jan 2, 2006",
}

var eastern = func() *time.Location {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// ParsePostDate parses a post-date string such as "Posted: Aug 19, 2025 -
// 11:34 PM" into a timestamp in the site's local zone. ok is false when
// no known format matches.
func ParsePostDate(text string) (t time.Time, ok bool) {
	dateStr := text
	if m := postedPrefix.FindStringSubmatch(text); m != nil {
		dateStr = strings.TrimSpace(m[1])
	}
	for _, format := range postDateFormats {
		if parsed, err := time.ParseInLocation(format, dateStr, eastern); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Canadian postal code patterns in decreasing strictness: full code with
// optional separator, forward sortation area, bare FSA prefix.
var postalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[ABCEGHJ-NPRSTVXY]\d[ABCEGHJ-NPRSTV-Z][ -]?\d[ABCEGHJ-NPRSTV-Z]\d\b`),
	regexp.MustCompile(`\b[ABCEGHJ-NPRSTVXY]\d[ABCEGHJ-NPRSTV-Z]\b`),
	regexp.MustCompile(`\b[ABCEGHJ-NPRSTVXY]\d[ABCEGHJ-NPRSTV-Z]`),
}

// ExtractPostalCode finds a full or partial Canadian postal code in an
// upper-cased location string. Separators are stripped from the match.
func ExtractPostalCode(location string) (code string, ok bool) {
	if location == "" {
		return "", false
	}
	upper := strings.ToUpper(location)
	for _, pattern := range postalPatterns {
		if m := pattern.FindString(upper); m != "" {
			m = strings.ReplaceAll(m, " ", "")
			m = strings.ReplaceAll(m, "-", "")
			return m, true
		}
	}
	return "", false
}
