package catalog

import "strings"

// alpha3ToAlpha2 maps ISO 3166-1 alpha-3 codes to alpha-2 for the
// countries appearing in the reference catalogs. Pipeline feeds in
// particular mix both conventions.
var alpha3ToAlpha2 = map[string]string{
	"USA": "US", "CAN": "CA", "MEX": "MX", "PAN": "PA", "BRA": "BR",
	"GBR": "GB", "IRL": "IE", "FRA": "FR", "ESP": "ES", "PRT": "PT",
	"DEU": "DE", "NLD": "NL", "BEL": "BE", "ITA": "IT", "GRC": "GR",
	"TUR": "TR", "UKR": "UA", "RUS": "RU", "POL": "PL", "CZE": "CZ",
	"AUT": "AT", "HUN": "HU", "SVK": "SK", "BLR": "BY", "NOR": "NO",
	"DNK": "DK", "SWE": "SE", "FIN": "FI", "CHE": "CH",
	"EGY": "EG", "SAU": "SA", "ARE": "AE", "QAT": "QA", "KWT": "KW",
	"BHR": "BH", "OMN": "OM", "IRN": "IR", "IRQ": "IQ", "ISR": "IL",
	"JOR": "JO", "YEM": "YE", "DJI": "DJ", "SDN": "SD", "ERI": "ER",
	"MAR": "MA", "DZA": "DZ", "TUN": "TN", "LBY": "LY", "NGA": "NG",
	"ZAF": "ZA", "KEN": "KE", "TZA": "TZ", "MOZ": "MZ", "AGO": "AO",
	"GHA": "GH", "CIV": "CI", "SEN": "SN", "ETH": "ET", "SOM": "SO",
	"IND": "IN", "PAK": "PK", "BGD": "BD", "LKA": "LK", "MMR": "MM",
	"THA": "TH", "MYS": "MY", "SGP": "SG", "IDN": "ID", "VNM": "VN",
	"PHL": "PH", "KHM": "KH", "CHN": "CN", "TWN": "TW", "HKG": "HK",
	"JPN": "JP", "KOR": "KR", "PRK": "KP", "MNG": "MN", "KAZ": "KZ",
	"TKM": "TM", "UZB": "UZ", "AZE": "AZ", "GEO": "GE", "ARM": "AM",
	"AUS": "AU", "NZL": "NZ", "PNG": "PG", "FJI": "FJ", "CHL": "CL",
	"ARG": "AR", "PER": "PE", "COL": "CO", "VEN": "VE", "ECU": "EC",
	"GIB": "GI", "MLT": "MT", "CYP": "CY", "BGR": "BG", "ROU": "RO",
}

// countryNames maps alpha-2 codes to display names for on-demand
// country node creation. Codes missing here fall back to the code itself.
var countryNames = map[string]string{
	"US": "United States", "CA": "Canada", "MX": "Mexico", "PA": "Panama",
	"BR": "Brazil", "GB": "United Kingdom", "IE": "Ireland", "FR": "France",
	"ES": "Spain", "PT": "Portugal", "DE": "Germany", "NL": "Netherlands",
	"BE": "Belgium", "IT": "Italy", "GR": "Greece", "TR": "Turkey",
	"UA": "Ukraine", "RU": "Russia", "PL": "Poland", "CZ": "Czechia",
	"AT": "Austria", "HU": "Hungary", "SK": "Slovakia", "BY": "Belarus",
	"NO": "Norway", "DK": "Denmark", "SE": "Sweden", "FI": "Finland",
	"CH": "Switzerland", "EG": "Egypt", "SA": "Saudi Arabia",
	"AE": "United Arab Emirates", "QA": "Qatar", "KW": "Kuwait",
	"BH": "Bahrain", "OM": "Oman", "IR": "Iran", "IQ": "Iraq",
	"IL": "Israel", "JO": "Jordan", "YE": "Yemen", "DJ": "Djibouti",
	"SD": "Sudan", "ER": "Eritrea", "MA": "Morocco", "DZ": "Algeria",
	"TN": "Tunisia", "LY": "Libya", "NG": "Nigeria", "ZA": "South Africa",
	"KE": "Kenya", "TZ": "Tanzania", "MZ": "Mozambique", "AO": "Angola",
	"GH": "Ghana", "CI": "Ivory Coast", "SN": "Senegal", "ET": "Ethiopia",
	"SO": "Somalia", "IN": "India", "PK": "Pakistan", "BD": "Bangladesh",
	"LK": "Sri Lanka", "MM": "Myanmar", "TH": "Thailand", "MY": "Malaysia",
	"SG": "Singapore", "ID": "Indonesia", "VN": "Vietnam",
	"PH": "Philippines", "KH": "Cambodia", "CN": "China", "TW": "Taiwan",
	"HK": "Hong Kong", "JP": "Japan", "KR": "South Korea",
	"KP": "North Korea", "MN": "Mongolia", "KZ": "Kazakhstan",
	"TM": "Turkmenistan", "UZ": "Uzbekistan", "AZ": "Azerbaijan",
	"GE": "Georgia", "AM": "Armenia", "AU": "Australia",
	"NZ": "New Zealand", "PG": "Papua New Guinea", "FJ": "Fiji",
	"CL": "Chile", "AR": "Argentina", "PE": "Peru", "CO": "Colombia",
	"VE": "Venezuela", "EC": "Ecuador", "GI": "Gibraltar", "MT": "Malta",
	"CY": "Cyprus", "BG": "Bulgaria", "RO": "Romania",
}

// NormalizeCountry maps a catalog country code to ISO 3166-1 alpha-2
// (e.g. "USA" -> "US", "us" -> "US"). The boolean is false when the
// code cannot be mapped; callers skip such records.
func NormalizeCountry(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	switch len(code) {
	case 2:
		if _, ok := countryNames[code]; ok {
			return code, true
		}
		return "", false
	case 3:
		if a2, ok := alpha3ToAlpha2[code]; ok {
			return a2, true
		}
		return "", false
	default:
		return "", false
	}
}

// CountryName returns a display name for an alpha-2 code, falling back
// to the code itself.
func CountryName(alpha2 string) string {
	if name, ok := countryNames[alpha2]; ok {
		return name
	}
	return alpha2
}

func normalizePortName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "port of ")
	return name
}
