// Package i18n holds the display strings for the locale-prefixed pages.
// Each supported locale ships as an embedded JSON file; missing keys fall
// back to English so a partial translation never breaks a page.
package i18n

import (
	"embed"
	"encoding/json"
	"path"

	valueobjects "upilinker/internal/domain/value_objects"
)

//go:embed locales/*.json
var localeFiles embed.FS

var catalog = loadCatalog()

func loadCatalog() map[string]map[string]string {
	loaded := make(map[string]map[string]string, len(valueobjects.SupportedLocales))
	for _, locale := range valueobjects.SupportedLocales {
		content, err := localeFiles.ReadFile(path.Join("locales", locale+".json"))
		if err != nil {
			continue
		}

		labels := map[string]string{}
		if err := json.Unmarshal(content, &labels); err != nil {
			continue
		}

		loaded[locale] = labels
	}

	return loaded
}

// T resolves a single label for the locale, falling back to English and
// finally to the key itself.
func T(locale, key string) string {
	normalized := valueobjects.NormalizeLocale(locale)
	if labels, ok := catalog[normalized]; ok {
		if value, ok := labels[key]; ok {
			return value
		}
	}
	if labels, ok := catalog[valueobjects.DefaultLocale]; ok {
		if value, ok := labels[key]; ok {
			return value
		}
	}

	return key
}

// PayPageLabels returns the full label set for a locale with English filling
// any gaps.
func PayPageLabels(locale string) map[string]string {
	normalized := valueobjects.NormalizeLocale(locale)
	merged := map[string]string{}
	for key, value := range catalog[valueobjects.DefaultLocale] {
		merged[key] = value
	}
	if normalized != valueobjects.DefaultLocale {
		for key, value := range catalog[normalized] {
			merged[key] = value
		}
	}

	return merged
}
