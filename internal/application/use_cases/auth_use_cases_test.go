//go:build !integration

package use_cases

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"upilinker/internal/application/dto"
	"upilinker/internal/domain/entities"
	apperrors "upilinker/internal/shared_kernel/errors"
)

func TestRegisterUserUseCaseExecute(t *testing.T) {
	users := &fakeUserRepository{}
	clock := fixedClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}

	useCase := NewRegisterUserUseCase(users, clock)
	resource, appErr := useCase.Execute(context.Background(), dto.RegisterUserCommand{
		Name:     "Asha",
		Email:    "  Asha@Example.com ",
		Password: "secret-pass",
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	if resource.Email != "asha@example.com" {
		t.Fatalf("expected lowercased email, got %q", resource.Email)
	}
	if resource.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if !resource.CreatedAt.Equal(clock.now) {
		t.Fatalf("expected clock time, got %s", resource.CreatedAt)
	}

	stored := users.created[0]
	if stored.PasswordHash == "secret-pass" || stored.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-pass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterUserUseCaseExecuteDuplicateEmail(t *testing.T) {
	users := &fakeUserRepository{
		byEmail: map[string]entities.User{
			"asha@example.com": {ID: "u1", Email: "asha@example.com"},
		},
	}

	useCase := NewRegisterUserUseCase(users, fixedClock{now: time.Now().UTC()})
	_, appErr := useCase.Execute(context.Background(), dto.RegisterUserCommand{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret-pass",
	})
	if appErr == nil {
		t.Fatalf("expected conflict error")
	}
	if appErr.Type != apperrors.TypeConflict {
		t.Fatalf("expected conflict type, got %s", appErr.Type)
	}
}

func TestRegisterUserUseCaseExecuteValidation(t *testing.T) {
	useCase := NewRegisterUserUseCase(&fakeUserRepository{}, fixedClock{now: time.Now().UTC()})

	cases := []struct {
		name    string
		command dto.RegisterUserCommand
	}{
		{name: "missing name", command: dto.RegisterUserCommand{Email: "a@b.com", Password: "secret-pass"}},
		{name: "bad email", command: dto.RegisterUserCommand{Name: "Asha", Email: "nope", Password: "secret-pass"}},
		{name: "short password", command: dto.RegisterUserCommand{Name: "Asha", Email: "a@b.com", Password: "abc"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, appErr := useCase.Execute(context.Background(), tc.command)
			if appErr == nil {
				t.Fatalf("expected validation error")
			}
			if appErr.Type != apperrors.TypeValidation {
				t.Fatalf("expected validation type, got %s", appErr.Type)
			}
		})
	}
}

func TestLoginUserUseCaseExecute(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash setup failed: %v", err)
	}
	users := &fakeUserRepository{
		byEmail: map[string]entities.User{
			"asha@example.com": {
				ID:           "u1",
				Name:         "Asha",
				Email:        "asha@example.com",
				PasswordHash: string(hash),
			},
		},
	}
	tokens := &fakeTokenIssuer{token: "jwt-token"}

	useCase := NewLoginUserUseCase(users, tokens, fixedClock{now: time.Now().UTC()})
	output, appErr := useCase.Execute(context.Background(), dto.LoginUserCommand{
		Email:    "ASHA@example.com",
		Password: "secret-pass",
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	if output.Token != "jwt-token" {
		t.Fatalf("expected issued token, got %q", output.Token)
	}
	if output.User.ID != "u1" {
		t.Fatalf("expected user u1, got %q", output.User.ID)
	}
	if tokens.issuedUserID != "u1" {
		t.Fatalf("expected token issued for u1, got %q", tokens.issuedUserID)
	}
}

func TestLoginUserUseCaseExecuteWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash setup failed: %v", err)
	}
	users := &fakeUserRepository{
		byEmail: map[string]entities.User{
			"asha@example.com": {ID: "u1", Email: "asha@example.com", PasswordHash: string(hash)},
		},
	}

	useCase := NewLoginUserUseCase(users, &fakeTokenIssuer{}, fixedClock{now: time.Now().UTC()})
	_, appErr := useCase.Execute(context.Background(), dto.LoginUserCommand{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	if appErr == nil {
		t.Fatalf("expected unauthorized error")
	}
	if appErr.Type != apperrors.TypeUnauthorized {
		t.Fatalf("expected unauthorized type, got %s", appErr.Type)
	}
}

func TestLoginUserUseCaseExecuteUnknownEmailSameAnswer(t *testing.T) {
	useCase := NewLoginUserUseCase(&fakeUserRepository{}, &fakeTokenIssuer{}, fixedClock{now: time.Now().UTC()})

	_, appErr := useCase.Execute(context.Background(), dto.LoginUserCommand{
		Email:    "nobody@example.com",
		Password: "secret-pass",
	})
	if appErr == nil {
		t.Fatalf("expected unauthorized error")
	}
	if appErr.Code != "invalid_credentials" {
		t.Fatalf("expected invalid_credentials, got %s", appErr.Code)
	}
}

type fakeUserRepository struct {
	byEmail map[string]entities.User
	created []entities.User
	appErr  *apperrors.AppError
}

func (f *fakeUserRepository) Create(_ context.Context, user entities.User) *apperrors.AppError {
	if f.appErr != nil {
		return f.appErr
	}
	f.created = append(f.created, user)

	return nil
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (entities.User, bool, *apperrors.AppError) {
	if f.appErr != nil {
		return entities.User{}, false, f.appErr
	}
	user, found := f.byEmail[email]

	return user, found, nil
}

type fakeTokenIssuer struct {
	token        string
	issuedUserID string
	appErr       *apperrors.AppError
}

func (f *fakeTokenIssuer) Issue(userID string, _ time.Time) (string, *apperrors.AppError) {
	if f.appErr != nil {
		return "", f.appErr
	}
	f.issuedUserID = userID

	return f.token, nil
}

func (f *fakeTokenIssuer) Verify(string) (string, *apperrors.AppError) {
	return f.issuedUserID, nil
}
