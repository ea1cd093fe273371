package valueobjects

import "strings"

const DefaultLocale = "en"

// SupportedLocales lists every locale the application routes and translates,
// in display order.
var SupportedLocales = []string{
	"en", "hi", "bn-IN", "mr-IN", "te-IN", "ta-IN",
	"gu-IN", "ur-IN", "kn-IN", "or-IN", "ml-IN", "pa-IN",
}

func IsSupportedLocale(raw string) bool {
	for _, locale := range SupportedLocales {
		if strings.EqualFold(locale, raw) {
			return true
		}
	}

	return false
}

// NormalizeLocale returns the canonical casing of a supported locale, or the
// default locale when the input is not supported.
func NormalizeLocale(raw string) string {
	for _, locale := range SupportedLocales {
		if strings.EqualFold(locale, raw) {
			return locale
		}
	}

	return DefaultLocale
}
