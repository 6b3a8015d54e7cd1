package frt

import (
	"github.com/tmarchand/gunindex/internal/diag"
)

// Countries maps upper-cased FRT country names to ISO 3166-1 alpha-2
// codes. The table mirrors the names the FRT actually uses, historical
// states included; it is loaded once and never mutated.
var Countries = map[string]string{
	"UNITED STATES OF AMERICA": "US",
	"CANADA":                   "CA",
	"UNITED KINGDOM":           "GB",
	"SPAIN":                    "ES",
	"ITALY":                    "IT",
	"HUNGARY":                  "HU",
	"GERMANY":                  "DE",
	"BELGIUM":                  "BE",
	"CHINA":                    "CN",
	"ISRAEL":                   "IL",
	"TURKEY":                   "TR",
	"JAPAN":                    "JP",
	"BOSNIA-HERZEGOVINA":       "BA",
	"AUSTRIA":                  "AT",
	"SWEDEN":                   "SE",
	"DENMARK":                  "DK",
	"NORWAY":                   "NO",
	"FINLAND":                  "FI",
	"POLAND":                   "PL",
	"CZECH REPUBLIC":           "CZ",
	"FRANCE":                   "FR",
	"NETHERLANDS":              "NL",
	"PORTUGAL":                 "PT",
	"RUSSIAN FEDERATION":       "RU",
	"SWITZERLAND":              "CH",
	"UNITED ARAB EMIRATES":     "AE",
	"VENEZUELA":                "VE",
	"GREECE":                   "GR",
	"SERBIA":                   "RS",
	"CZECHOSLOVAKIA":           "CZ",
	"YUGOSLAVIA":               "RS",
	"RUSSIA":                   "RU",
	"GERMANY, WEST":            "DE",
	"GERMANY, EAST":            "DE",
	"TAIWAN":                   "TW",
	"KOREA, SOUTH":             "KR",
	"ARGENTINA":                "AR",
	"RHODESIA":                 "ZW",
	"PHILIPPINES":              "PH",
	"BRAZIL":                   "BR",
	"PAKISTAN":                 "PK",
	"CHILE":                    "CL",
	"ROMANIA":                  "RO",
	"SINGAPORE":                "SG",
	"AUSTRALIA":                "AU",
	"NEW ZEALAND":              "NZ",
	"IRELAND":                  "IE",
	"BURMA":                    "MM",
	"MEXICO":                   "MX",
	"BULGARIA":                 "BG",
	"SOUTH AFRICA":             "ZA",
	"INDIA":                    "IN",
	"INDONESIA":                "ID",
	"ALBANIA":                  "AL",
	"SLOVENIA":                 "SI",
	"CROATIA":                  "HR",
	"DOMINICAN REPUBLIC":       "DO",
	"CONFEDERATE STATES OF AMERICA": "US",
	"NIGERIA":                  "NG",
	"MOROCCO":                  "MA",
	"TUNISIA":                  "TN",
	"MANCHURIA":                "CN",
	"AZERBAIJAN":               "AZ",
	"ESTONIA":                  "EE",
	"EGYPT":                    "EG",
	"IRAQ":                     "IQ",
	"UNITED ARAB REPUBLIC":     "AE",
	"KOREA, NORTH":             "KP",
	"IRAN":                     "IR",
	"UKRAINE":                  "UA",
	"SAUDI ARABIA":             "SA",
	"SLOVAKIA (SLOVAK REPUBLIC)": "SK",
	"COLOMBIA":                 "CO",
	"JORDAN":                   "JO",
	"KAZAKHSTAN":               "KZ",
	"VIETNAM":                  "VN",
	"THAILAND":                 "TH",
	"KOREA, REPUBLIC OF":       "KR",
	"MALAYSIA":                 "MY",
	"LUXEMBOURG":               "LU",
	"NEPAL":                    "NP",
	"MACEDONIA, THE FORMER YUGOSLAV REPUBLIC OF": "MK",
	"PERU":           "PE",
	"VIETNAM, NORTH": "VN",
	"MONTENEGRO":     "ME",
}

// CountryUnknown is the sentinel code for unmapped or absent countries.
const CountryUnknown = "Unknown"

// ResolveCountry maps an upper-cased country name to its ISO code.
// An unmapped non-empty name yields the Unknown sentinel plus a
// diagnostic; an empty name is Unknown with no diagnostic, since a record
// stating no country is not an anomaly.
func ResolveCountry(nameUpper string, table map[string]string, rep diag.Reporter) string {
	if code, ok := table[nameUpper]; ok {
		return code
	}
	if nameUpper != "" {
		diag.Warn(rep, diag.CodeUnknownCountry, "unknown country code",
			map[string]any{"country": nameUpper})
	}
	return CountryUnknown
}
