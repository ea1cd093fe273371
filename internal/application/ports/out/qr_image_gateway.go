package out

import (
	"context"

	apperrors "upilinker/internal/shared_kernel/errors"
)

type QRImageGateway interface {
	// ImageURL returns the public QR rendering URL for a UPI link; pages and
	// API responses embed it directly.
	ImageURL(upiLink string) string
	// Fetch retrieves the rendered image for server-side proxying.
	Fetch(ctx context.Context, upiLink string) (content []byte, contentType string, appErr *apperrors.AppError)
}
