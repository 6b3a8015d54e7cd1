package frt

import (
	"strings"

	"github.com/tmarchand/gunindex/internal/diag"
)

// Record is the canonical structured output for one firearm reference
// entry. JSON field names match the catalog API's FRT payload.
type Record struct {
	FRN          string   `json:"frn"`
	Type         string   `json:"type"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
	Action       string   `json:"action"`
	LegalClass   string   `json:"legal_class"`
	CountryCode  string   `json:"country_code"`
	Calibres     []string `json:"calibres"`
	Pages        []int    `json:"pages"`
	Images       []string `json:"images,omitempty"`
}

// BuildRecords extracts one Record per identified group. The no-FRN group
// is dropped with a diagnostic; every other anomaly (missing fields,
// unknown countries) is reported but never stops record construction.
func BuildRecords(groups []Group, countries map[string]string, rep diag.Reporter) []Record {
	records := make([]Record, 0, len(groups))

	for _, group := range groups {
		text := group.CombinedText()

		manufacturer, _ := ExtractValue(text, "Manufacturer")
		make_, _ := ExtractValue(text, "Make")
		model, _ := ExtractValue(text, "Model")
		action, _ := ExtractValue(text, "Action")
		legalClass, _ := ExtractValue(text, "Legal Classification")
		country, _ := ExtractValue(text, "Country of Manufacturer")
		frnType, _ := ExtractValue(text, "Type")

		// "Make" takes precedence over "Manufacturer" when present.
		if make_ != "" {
			manufacturer = make_
		}

		countryCode := ResolveCountry(strings.ToUpper(country), countries, rep)

		frn := ""
		if group.Key.OK {
			frn = group.Key.FRN
		}
		warnIfMissing(rep, frn, "FRN", frn)
		warnIfMissing(rep, frn, "Type", frnType)
		warnIfMissing(rep, frn, "Manufacturer", manufacturer)
		warnIfMissing(rep, frn, "Model", model)
		warnIfMissing(rep, frn, "Action", action)
		warnIfMissing(rep, frn, "Legal Classification", legalClass)
		warnIfMissing(rep, frn, "Country of Manufacturer", country)

		if !group.Key.OK {
			diag.Warn(rep, diag.CodeRecordDropped, "record has no reference number",
				map[string]any{"pages": len(group.Pages)})
			continue
		}

		calibres := CleanCalibres(ExtractCalibres(text, group.Key))
		if calibres == nil {
			calibres = []string{}
		}

		records = append(records, Record{
			FRN:          frn,
			Type:         frnType,
			Manufacturer: manufacturer,
			Model:        model,
			Action:       action,
			LegalClass:   legalClass,
			CountryCode:  countryCode,
			Calibres:     calibres,
			Pages:        group.PageIndices(),
		})
	}
	return records
}

func warnIfMissing(rep diag.Reporter, frn, field, value string) {
	if strings.TrimSpace(value) == "" {
		diag.Warn(rep, diag.CodeMissingField, "missing field",
			map[string]any{"field": field, "frn": frn})
	}
}
