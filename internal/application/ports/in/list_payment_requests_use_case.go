package in

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type ListPaymentRequestsUseCase interface {
	Execute(ctx context.Context, query dto.ListPaymentRequestsQuery) ([]dto.PaymentRequestResource, *apperrors.AppError)
}
