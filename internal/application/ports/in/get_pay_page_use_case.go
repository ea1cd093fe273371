package in

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type GetPayPageUseCase interface {
	Execute(ctx context.Context, query dto.GetPayPageQuery) (dto.PayPageResource, *apperrors.AppError)
}
