package in

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type CreatePaymentRequestUseCase interface {
	Execute(ctx context.Context, command dto.CreatePaymentRequestCommand) (dto.CreatePaymentRequestOutput, *apperrors.AppError)
}
