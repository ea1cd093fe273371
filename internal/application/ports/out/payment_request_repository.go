package out

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type PaymentRequestRepository interface {
	Create(ctx context.Context, command dto.CreatePaymentRequestPersistenceCommand) (dto.CreatePaymentRequestPersistenceResult, *apperrors.AppError)
	// UpdateStatus applies a status transition for the owner's request,
	// guarded on the expected current status; updated is false when the row
	// no longer matches (deleted or concurrently transitioned).
	UpdateStatus(ctx context.Context, ownerID, id, fromStatus, toStatus string) (updated bool, appErr *apperrors.AppError)
	Delete(ctx context.Context, ownerID, id string) (deleted bool, appErr *apperrors.AppError)
}
