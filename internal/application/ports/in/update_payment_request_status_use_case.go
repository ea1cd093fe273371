package in

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type UpdatePaymentRequestStatusUseCase interface {
	Execute(ctx context.Context, command dto.UpdatePaymentRequestStatusCommand) (dto.PaymentRequestResource, *apperrors.AppError)
}
