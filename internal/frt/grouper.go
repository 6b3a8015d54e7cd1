// Package frt turns raw FRT page texts into structured firearm reference
// records: pages are grouped by their embedded reference number, labeled
// fields are pulled out of the combined text, and the calibre table rows
// are parsed into a de-duplicated calibre list.
package frt

import (
	"regexp"
	"strconv"
	"strings"
)

var frnMarker = regexp.MustCompile(`Firearm Reference Number \(FRN\):\s*(\d+)`)

// GroupKey identifies a record group. OK is false for the single group
// holding pages with no reference number, so a real FRN value is never
// overloaded as a sentinel.
type GroupKey struct {
	FRN string
	OK  bool
}

// Page is one page's text with its zero-based index in the source document.
type Page struct {
	Index int
	Text  string
}

// Group is the ordered set of pages sharing one reference number. One
// record may span multiple, non-contiguous pages.
type Group struct {
	Key   GroupKey
	Pages []Page
}

// CombinedText joins the group's page texts in source order.
func (g Group) CombinedText() string {
	texts := make([]string, len(g.Pages))
	for i, p := range g.Pages {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n")
}

// PageIndices returns the source indices of the group's pages.
func (g Group) PageIndices() []int {
	idx := make([]int, len(g.Pages))
	for i, p := range g.Pages {
		idx[i] = p.Index
	}
	return idx
}

// GroupPages scans every page once and groups pages by reference number.
// Pages without a marker collect in the no-FRN group. Groups are returned
// in first-seen order, so output is deterministic for a given input.
// Every page lands in exactly one group.
func GroupPages(pages []string) []Group {
	var groups []Group
	byKey := make(map[GroupKey]int)

	for idx, text := range pages {
		key := GroupKey{}
		if m := frnMarker.FindStringSubmatch(text); m != nil {
			key = GroupKey{FRN: m[1], OK: true}
		}
		gi, seen := byKey[key]
		if !seen {
			gi = len(groups)
			byKey[key] = gi
			groups = append(groups, Group{Key: key})
		}
		groups[gi].Pages = append(groups[gi].Pages, Page{Index: idx, Text: text})
	}
	return groups
}

// quoteFRN guards against a reference number that is not purely numeric
// slipping into a row regex. The marker only captures digits, so this is
// a plain passthrough for well-formed keys.
func quoteFRN(frn string) string {
	if _, err := strconv.Atoi(frn); err == nil {
		return frn
	}
	return regexp.QuoteMeta(frn)
}
