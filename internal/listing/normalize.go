// Package listing normalizes scraped classifieds attributes into the
// catalog's closed taxonomy and parses their free-text fields. Every
// function here is total: unknown or unparseable input degrades to a
// fallback value plus a diagnostic, never an error.
package listing

import (
	"strings"

	"github.com/tmarchand/gunindex/internal/diag"
)

// Pair is one scraped (label, value) attribute in page order.
type Pair struct {
	Key   string
	Value string
}

// Taxonomy bundles the static lookup tables so the normalizer stays
// testable in isolation.
type Taxonomy struct {
	KeyAliases map[string]string
	Categories map[string]string
	Calibers   map[string]string
}

// DefaultTaxonomy returns the process-wide tables.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		KeyAliases: KeyAliases,
		Categories: CategoryBySource,
		Calibers:   CaliberByLabel,
	}
}

// Normalizer maps raw attribute pairs into normalized properties plus a
// category slug.
type Normalizer struct {
	tax Taxonomy
	rep diag.Reporter
}

func NewNormalizer(tax Taxonomy, rep diag.Reporter) *Normalizer {
	return &Normalizer{tax: tax, rep: rep}
}

// Normalize lower-cases and aliases each key, resolves category and
// caliber values against the taxonomy, canonicalizes handedness keys, and
// passes everything else through unchanged. An unknown category becomes
// "" and the key is dropped; an unknown caliber passes the raw value
// through. The last category pair wins when several appear.
func (n *Normalizer) Normalize(props []Pair) (categoryID string, normalized map[string]string) {
	normalized = make(map[string]string, len(props))

	for _, p := range props {
		key := strings.ToLower(p.Key)
		if alias, ok := n.tax.KeyAliases[key]; ok {
			key = alias
		}
		value := p.Value

		switch key {
		case "category":
			categoryID = n.tax.Categories[value]
			if categoryID == "" {
				diag.Warn(n.rep, diag.CodeUnknownCategory, "unknown category",
					map[string]any{"category": value})
			}
			continue
		case "caliber":
			mapped, ok := n.tax.Calibers[value]
			if !ok {
				diag.Warn(n.rep, diag.CodeUnknownCaliber, "unknown caliber",
					map[string]any{"caliber": value})
			} else {
				value = mapped
			}
		case "hand", "handed", "handedness":
			key = "handed"
		}

		normalized[key] = value
	}
	return categoryID, normalized
}
