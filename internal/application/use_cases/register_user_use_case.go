package use_cases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	portsout "upilinker/internal/application/ports/out"
	"upilinker/internal/domain/entities"
	apperrors "upilinker/internal/shared_kernel/errors"
)

const minPasswordLength = 6

type registerUserUseCase struct {
	users portsout.UserRepository
	clock Clock
}

func NewRegisterUserUseCase(users portsout.UserRepository, clock Clock) portsin.RegisterUserUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &registerUserUseCase{
		users: users,
		clock: clock,
	}
}

func (u *registerUserUseCase) Execute(ctx context.Context, command dto.RegisterUserCommand) (dto.UserResource, *apperrors.AppError) {
	if u.users == nil {
		return dto.UserResource{}, apperrors.NewInternal(
			"user_repository_missing",
			"user repository is required",
			nil,
		)
	}

	name := strings.TrimSpace(command.Name)
	if name == "" {
		return dto.UserResource{}, apperrors.NewValidation(
			"invalid_request",
			"name is required",
			map[string]any{"field": "name"},
		)
	}

	email := strings.ToLower(strings.TrimSpace(command.Email))
	if email == "" || !strings.Contains(email, "@") {
		return dto.UserResource{}, apperrors.NewValidation(
			"invalid_request",
			"a valid email is required",
			map[string]any{"field": "email"},
		)
	}

	if len(command.Password) < minPasswordLength {
		return dto.UserResource{}, apperrors.NewValidation(
			"invalid_request",
			"password must be at least 6 characters",
			map[string]any{"field": "password", "min_length": minPasswordLength},
		)
	}

	_, found, appErr := u.users.GetByEmail(ctx, email)
	if appErr != nil {
		return dto.UserResource{}, appErr
	}
	if found {
		return dto.UserResource{}, apperrors.NewConflict(
			"email_already_registered",
			"an account with this email already exists",
			map[string]any{"email": email},
		)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(command.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResource{}, apperrors.NewInternal(
			"password_hashing_failed",
			"failed to hash password",
			nil,
		)
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    u.clock.NowUTC(),
	}

	if appErr := u.users.Create(ctx, user); appErr != nil {
		return dto.UserResource{}, appErr
	}

	return dto.UserResource{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
