package middleware

import (
	"context"
	"net/http"
	"strings"

	valueobjects "upilinker/internal/domain/value_objects"
)

type localeContextKey struct{}

// LocaleFromContext returns the locale resolved from the request path prefix,
// or the default when the request never went through the locale layer.
func LocaleFromContext(ctx context.Context) string {
	if locale, ok := ctx.Value(localeContextKey{}).(string); ok {
		return locale
	}

	return valueobjects.DefaultLocale
}

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// localePassthroughPrefixes are served as-is: the API surface, health probe
// and swagger never carry a locale prefix.
var localePassthroughPrefixes = []string{"/v1/", "/healthz", "/swagger", "/assets/", "/favicon.ico"}

// LocalizeRoutes strips a supported locale prefix from the path and stores it
// in the request context before dispatch. Unprefixed page paths redirect to
// the default locale so every page URL is locale-qualified; API paths pass
// through untouched.
func LocalizeRoutes(defaultLocale string, next http.Handler) http.Handler {
	if !valueobjects.IsSupportedLocale(defaultLocale) {
		defaultLocale = valueobjects.DefaultLocale
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		for _, prefix := range localePassthroughPrefixes {
			if strings.HasPrefix(path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		segment, rest := splitFirstSegment(path)
		if valueobjects.IsSupportedLocale(segment) {
			locale := valueobjects.NormalizeLocale(segment)
			r2 := r.Clone(WithLocale(r.Context(), locale))
			r2.URL.Path = rest
			next.ServeHTTP(w, r2)
			return
		}

		target := "/" + defaultLocale + path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	})
}

// splitFirstSegment returns the first path segment and the remaining path
// with a leading slash; "/hi/pay/pr_1" yields ("hi", "/pay/pr_1").
func splitFirstSegment(path string) (string, string) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, found := strings.Cut(trimmed, "/")
	if !found {
		return segment, "/"
	}

	return segment, "/" + rest
}
