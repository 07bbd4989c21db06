package holiday

import "sort"

// supportedCalendars is the fixed, built-in enumeration of known
// calendar codes. Custom calendars created through resource locators or
// extra rule data are not listed here.
var supportedCalendars = map[string]string{
	"al": "Albania",
	"ar": "Argentina",
	"at": "Austria",
	"au": "Australia",
	"ba": "Bosnia and Herzegovina",
	"be": "Belgium",
	"bg": "Bulgaria",
	"bo": "Bolivia",
	"br": "Brazil",
	"by": "Belarus",
	"ca": "Canada",
	"ch": "Switzerland",
	"cl": "Chile",
	"co": "Colombia",
	"cr": "Costa Rica",
	"cz": "Czech Republic",
	"de": "Germany",
	"dk": "Denmark",
	"ec": "Ecuador",
	"ee": "Estonia",
	"es": "Spain",
	"et": "Ethiopia",
	"fi": "Finland",
	"fr": "France",
	"gb": "United Kingdom",
	"gr": "Greece",
	"hr": "Croatia",
	"hu": "Hungary",
	"ie": "Ireland",
	"is": "Iceland",
	"it": "Italy",
	"jp": "Japan",
	"kz": "Kazakhstan",
	"li": "Liechtenstein",
	"lt": "Lithuania",
	"lu": "Luxembourg",
	"lv": "Latvia",
	"ma": "Morocco",
	"md": "Moldova",
	"me": "Montenegro",
	"mt": "Malta",
	"mx": "Mexico",
	"ng": "Nigeria",
	"ni": "Nicaragua",
	"nl": "Netherlands",
	"no": "Norway",
	"pa": "Panama",
	"pe": "Peru",
	"pl": "Poland",
	"pt": "Portugal",
	"py": "Paraguay",
	"ro": "Romania",
	"rs": "Serbia",
	"ru": "Russia",
	"se": "Sweden",
	"si": "Slovenia",
	"sk": "Slovakia",
	"ua": "Ukraine",
	"us": "United States",
	"uy": "Uruguay",
	"ve": "Venezuela",
	"za": "South Africa",
}

// Codes returns all supported calendar codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(supportedCalendars))
	for code := range supportedCalendars {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SupportedCalendar reports whether the code is in the built-in
// enumeration.
func SupportedCalendar(code string) bool {
	_, ok := supportedCalendars[NormalizeCalendarID(code)]
	return ok
}

// CalendarName returns the English name for a supported code, or "".
func CalendarName(code string) string {
	return supportedCalendars[NormalizeCalendarID(code)]
}
