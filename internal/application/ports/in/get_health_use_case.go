package in

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type GetHealthUseCase interface {
	Execute(ctx context.Context, command dto.GetHealthCommand) (dto.HealthOutput, *apperrors.AppError)
}
