package frt

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// calibreStoplist drops propellant/projectile artifacts that appear in
// calibre cells but are not calibres.
var calibreStoplist = map[string]bool{
	"GAS":   true,
	"BB":    true,
	"ARROW": true,
}

// ExtractCalibres parses the calibre table rows belonging to the given
// group key out of the record's combined text. Rows look like
//
//	128418 - 2 9MM LUGER 32 143 Prohibited ...
//
// with the calibre captured between the sequence number and the first 1-4
// digit numeric field. Results are de-duplicated preserving first-seen
// order. The no-FRN group has no calibre rows by definition.
func ExtractCalibres(text string, key GroupKey) []string {
	if !key.OK {
		return nil
	}
	rowPattern := regexp.MustCompile(
		`(?m)^\s*` + quoteFRN(key.FRN) + `\s*-\s*\d+\s+(?P<calibre>.+?)\s+\d{1,4}(?:\s+\d{1,4})?\b`,
	)

	seen := make(map[string]bool)
	var calibres []string
	for _, m := range rowPattern.FindAllStringSubmatch(text, -1) {
		calibre := strings.TrimSpace(m[1])
		calibre = multiSpace.ReplaceAllString(calibre, " ")
		if !seen[calibre] {
			seen[calibre] = true
			calibres = append(calibres, calibre)
		}
	}
	return calibres
}

// CleanCalibres normalizes raw calibre cells into the record's final
// calibre set: "N/A" fragments are stripped, multi-calibre markings are
// split on "/", a trailing " X" marker is dropped, and empty or stoplisted
// tokens are discarded. First-seen order is preserved.
func CleanCalibres(raw []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, calibre := range raw {
		calibre = strings.TrimSpace(strings.ReplaceAll(calibre, "N/A", ""))
		for _, part := range strings.Split(calibre, "/") {
			part = strings.ReplaceAll(strings.TrimSpace(part), " X", "")
			if part == "" || calibreStoplist[part] {
				continue
			}
			if !seen[part] {
				seen[part] = true
				out = append(out, part)
			}
		}
	}
	return out
}
