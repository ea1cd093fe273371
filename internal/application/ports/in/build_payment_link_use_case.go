package in

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type BuildPaymentLinkUseCase interface {
	Execute(ctx context.Context, command dto.BuildPaymentLinkCommand) (dto.BuildPaymentLinkOutput, *apperrors.AppError)
}
