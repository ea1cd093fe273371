//go:build !integration

package i18n

import (
	"testing"

	valueobjects "upilinker/internal/domain/value_objects"
)

func TestCatalogCoversEveryLocale(t *testing.T) {
	for _, locale := range valueobjects.SupportedLocales {
		labels, ok := catalog[locale]
		if !ok {
			t.Fatalf("missing catalog for locale %s", locale)
		}
		if labels["pay_button"] == "" {
			t.Fatalf("locale %s is missing pay_button", locale)
		}
	}
}

func TestTFallsBackToEnglish(t *testing.T) {
	if got := T("hi", "pay_button"); got == "" || got == "pay_button" {
		t.Fatalf("expected hindi label, got %q", got)
	}

	if got := T("xx", "pay_button"); got != T("en", "pay_button") {
		t.Fatalf("expected english fallback, got %q", got)
	}

	if got := T("en", "no_such_key"); got != "no_such_key" {
		t.Fatalf("expected key echo for unknown key, got %q", got)
	}
}

func TestPayPageLabelsMergesDefaults(t *testing.T) {
	labels := PayPageLabels("ta-IN")
	if len(labels) == 0 {
		t.Fatalf("expected labels")
	}

	english := PayPageLabels("en")
	for key := range english {
		if labels[key] == "" {
			t.Fatalf("key %s missing after merge", key)
		}
	}
}
