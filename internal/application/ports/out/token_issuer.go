package out

import (
	"time"

	apperrors "upilinker/internal/shared_kernel/errors"
)

type TokenIssuer interface {
	Issue(userID string, issuedAt time.Time) (string, *apperrors.AppError)
	// Verify returns the user id carried by a valid token.
	Verify(token string) (string, *apperrors.AppError)
}
