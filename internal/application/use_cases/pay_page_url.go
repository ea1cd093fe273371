package use_cases

import (
	valueobjects "upilinker/internal/domain/value_objects"
)

// payPageURL builds the locale-prefixed pay-page path; anonymous requests
// carry the public flag so the pay page queries the public store.
func payPageURL(locale, id string, public bool) string {
	path := "/" + valueobjects.NormalizeLocale(locale) + "/pay/" + id
	if public {
		path += "?public=true"
	}

	return path
}
