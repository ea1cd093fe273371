package out

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type PaymentRequestReadModel interface {
	// GetPublic resolves an anonymous request by id from the public store.
	GetPublic(ctx context.Context, id string) (dto.PaymentRequestResource, bool, *apperrors.AppError)
	// GetOwned resolves a request from the owner's store; only the owner's
	// path is queried, so a foreign id simply does not resolve.
	GetOwned(ctx context.Context, ownerID, id string) (dto.PaymentRequestResource, bool, *apperrors.AppError)
	ListByOwner(ctx context.Context, ownerID string) ([]dto.PaymentRequestResource, *apperrors.AppError)
}
