//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocalizeRoutesStripsSupportedPrefix(t *testing.T) {
	var seenPath, seenLocale string
	handler := LocalizeRoutes("en", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.Path
		seenLocale = LocaleFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/hi/pay/pr_1?public=true", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seenPath != "/pay/pr_1" {
		t.Fatalf("expected stripped path /pay/pr_1, got %q", seenPath)
	}
	if seenLocale != "hi" {
		t.Fatalf("expected locale hi, got %q", seenLocale)
	}
}

func TestLocalizeRoutesNormalizesCasing(t *testing.T) {
	var seenLocale string
	handler := LocalizeRoutes("en", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenLocale = LocaleFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/TA-in/pay/pr_1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seenLocale != "ta-IN" {
		t.Fatalf("expected canonical ta-IN, got %q", seenLocale)
	}
}

func TestLocalizeRoutesRedirectsUnprefixedPages(t *testing.T) {
	handler := LocalizeRoutes("en", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run for unprefixed page paths")
	}))

	req := httptest.NewRequest(http.MethodGet, "/pay/pr_1?public=true", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307 redirect, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/en/pay/pr_1?public=true" {
		t.Fatalf("expected locale-qualified redirect, got %q", got)
	}
}

func TestLocalizeRoutesLeavesAPIAlone(t *testing.T) {
	paths := []string{"/v1/payment-requests", "/healthz", "/swagger/index.html", "/v1/pay/pr_1"}
	for _, path := range paths {
		called := false
		handler := LocalizeRoutes("en", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			if r.URL.Path != path {
				t.Fatalf("path must pass through untouched, got %q", r.URL.Path)
			}
		}))

		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if !called {
			t.Fatalf("expected passthrough for %s, got %d", path, rec.Code)
		}
	}
}

func TestLocalizeRoutesUnsupportedPrefixRedirects(t *testing.T) {
	handler := LocalizeRoutes("en", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run for unsupported locale segments")
	}))

	req := httptest.NewRequest(http.MethodGet, "/fr/pay/pr_1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307 redirect, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/en/fr/pay/pr_1" {
		t.Fatalf("unexpected redirect target %q", got)
	}
}
