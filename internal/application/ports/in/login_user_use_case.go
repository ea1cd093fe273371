package in

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type LoginUserUseCase interface {
	Execute(ctx context.Context, command dto.LoginUserCommand) (dto.LoginUserOutput, *apperrors.AppError)
}
