package in

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type WatchPaymentRequestsUseCase interface {
	// Execute returns a live event channel for the owner's requests and a
	// cancel function that releases the subscription.
	Execute(ctx context.Context, query dto.WatchPaymentRequestsQuery) (<-chan dto.PaymentRequestEvent, func(), *apperrors.AppError)
}
