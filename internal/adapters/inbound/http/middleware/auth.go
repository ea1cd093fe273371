package middleware

import (
	"context"
	"net/http"
	"strings"

	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type principalContextKey struct{}

// PrincipalFromContext returns the authenticated user id, when the request
// carried a valid bearer token.
func PrincipalFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(principalContextKey{}).(string)

	return userID, ok
}

// WithPrincipal is used by handler tests to simulate an authenticated request.
func WithPrincipal(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, principalContextKey{}, userID)
}

// Authenticate resolves an optional Authorization bearer token. Requests
// without a token pass through anonymously; a present but invalid token is
// rejected so callers never operate on a half-trusted identity. A header
// carrying just the token, without the Bearer scheme, is accepted too.
func Authenticate(verifier portsout.TokenIssuer, onError func(http.ResponseWriter, *apperrors.AppError), next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := header
		if scheme, rest, found := strings.Cut(header, " "); found {
			if !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(rest) == "" {
				onError(w, apperrors.NewUnauthorized(
					"invalid_authorization_header",
					"authorization header must be a bearer token",
					nil,
				))
				return
			}
			token = rest
		}

		userID, appErr := verifier.Verify(strings.TrimSpace(token))
		if appErr != nil {
			onError(w, appErr)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), userID)))
	})
}
