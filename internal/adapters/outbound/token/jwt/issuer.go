package jwt

import (
	"strings"
	"time"

	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 72 * time.Hour

type customClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Issuer signs and verifies bearer tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
}

var _ portsout.TokenIssuer = (*Issuer)(nil)

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

func (i *Issuer) Issue(userID string, issuedAt time.Time) (string, *apperrors.AppError) {
	claims := customClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenLifetime)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", apperrors.NewInternal(
			"token_sign_failed",
			"failed to sign token",
			map[string]any{"error": err.Error()},
		)
	}

	return signed, nil
}

func (i *Issuer) Verify(tokenString string) (string, *apperrors.AppError) {
	token, err := jwt.ParseWithClaims(
		strings.TrimSpace(tokenString),
		&customClaims{},
		func(token *jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", apperrors.NewUnauthorized(
			"invalid_token",
			"Token is invalid or expired",
			nil,
		)
	}

	claims, ok := token.Claims.(*customClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", apperrors.NewUnauthorized(
			"invalid_token",
			"Token is invalid or expired",
			nil,
		)
	}

	return claims.UserID, nil
}
