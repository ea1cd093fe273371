package in

import (
	"context"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type RegisterUserUseCase interface {
	Execute(ctx context.Context, command dto.RegisterUserCommand) (dto.UserResource, *apperrors.AppError)
}
