package frt

import (
	"regexp"
	"strings"
	"sync"
)

// KnownLabels are the field labels that appear on FRT record pages. The
// list drives wrapped-label disambiguation: a value line that begins with
// the first word of a different label is the next field's label reflowed
// onto this line, not a real value.
var KnownLabels = []string{
	"Manufacturer",
	"Model",
	"Action",
	"Legal Classification",
	"Country of Manufacturer",
	"Serial Numbering",
}

var (
	labelMu       sync.Mutex
	labelPatterns = make(map[string]*regexp.Regexp)
)

func labelPattern(label string) *regexp.Regexp {
	labelMu.Lock()
	defer labelMu.Unlock()
	if re, ok := labelPatterns[label]; ok {
		return re
	}
	re := regexp.MustCompile(`(?im)^` + regexp.QuoteMeta(label) + `\s*:\s*(.*)$`)
	labelPatterns[label] = re
	return re
}

// ExtractValue finds the line "<label>: <value>" in text and returns the
// trimmed remainder. ok is false when the label does not appear at all.
// A found-but-blank field and a disambiguated wrapped label both return
// ("", true); callers treat either as a missing value.
func ExtractValue(text, label string) (value string, ok bool) {
	m := labelPattern(label).FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	remainder := strings.TrimSpace(m[1])
	if remainder == "" {
		return "", true
	}
	remainderUpper := strings.ToUpper(remainder)
	for _, other := range KnownLabels {
		if strings.EqualFold(other, label) {
			continue
		}
		firstWord := strings.ToUpper(strings.Fields(other)[0])
		if strings.HasPrefix(remainderUpper, firstWord) {
			return "", true
		}
	}
	return remainder, true
}
