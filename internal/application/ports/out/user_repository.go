package out

import (
	"context"

	"upilinker/internal/domain/entities"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type UserRepository interface {
	Create(ctx context.Context, user entities.User) *apperrors.AppError
	GetByEmail(ctx context.Context, email string) (entities.User, bool, *apperrors.AppError)
}
