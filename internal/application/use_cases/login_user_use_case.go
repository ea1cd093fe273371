package use_cases

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type loginUserUseCase struct {
	users  portsout.UserRepository
	tokens portsout.TokenIssuer
	clock  Clock
}

func NewLoginUserUseCase(users portsout.UserRepository, tokens portsout.TokenIssuer, clock Clock) portsin.LoginUserUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &loginUserUseCase{
		users:  users,
		tokens: tokens,
		clock:  clock,
	}
}

func (u *loginUserUseCase) Execute(ctx context.Context, command dto.LoginUserCommand) (dto.LoginUserOutput, *apperrors.AppError) {
	if u.users == nil || u.tokens == nil {
		return dto.LoginUserOutput{}, apperrors.NewInternal(
			"auth_dependencies_missing",
			"user repository and token issuer are required",
			nil,
		)
	}

	email := strings.ToLower(strings.TrimSpace(command.Email))
	if email == "" || command.Password == "" {
		return dto.LoginUserOutput{}, apperrors.NewValidation(
			"invalid_request",
			"email and password are required",
			nil,
		)
	}

	// A missing account and a wrong password answer identically.
	user, found, appErr := u.users.GetByEmail(ctx, email)
	if appErr != nil {
		return dto.LoginUserOutput{}, appErr
	}
	if !found {
		return dto.LoginUserOutput{}, invalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(command.Password)); err != nil {
		return dto.LoginUserOutput{}, invalidCredentials()
	}

	token, appErr := u.tokens.Issue(user.ID, u.clock.NowUTC())
	if appErr != nil {
		return dto.LoginUserOutput{}, appErr
	}

	return dto.LoginUserOutput{
		Token: token,
		User: dto.UserResource{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func invalidCredentials() *apperrors.AppError {
	return apperrors.NewUnauthorized(
		"invalid_credentials",
		"email or password is incorrect",
		nil,
	)
}
