package in

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type DeletePaymentRequestUseCase interface {
	Execute(ctx context.Context, command dto.DeletePaymentRequestCommand) *apperrors.AppError
}
