//go:build !integration

package use_cases

import (
	"context"
	"testing"
	"time"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

func TestInitializePersistenceUseCaseExecuteSuccess(t *testing.T) {
	fakeGateway := &fakePersistenceGateway{}
	useCase := NewInitializePersistenceUseCase(fakeGateway)

	appErr := useCase.Execute(context.Background(), dto.InitializePersistenceCommand{
		ReadinessTimeout:       50 * time.Millisecond,
		ReadinessRetryInterval: 5 * time.Millisecond,
	})

	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if fakeGateway.readinessChecks != 1 {
		t.Fatalf("expected one readiness check, got %d", fakeGateway.readinessChecks)
	}

	if fakeGateway.migrationRuns != 1 {
		t.Fatalf("expected one migration run, got %d", fakeGateway.migrationRuns)
	}
}

func TestInitializePersistenceUseCaseExecuteRetryThenSuccess(t *testing.T) {
	fakeGateway := &fakePersistenceGateway{
		readinessErrors: []*apperrors.AppError{
			apperrors.NewInternal("DB_CONNECT_FAILED", "failed", nil),
			nil,
		},
	}
	useCase := NewInitializePersistenceUseCase(fakeGateway)

	appErr := useCase.Execute(context.Background(), dto.InitializePersistenceCommand{
		ReadinessTimeout:       100 * time.Millisecond,
		ReadinessRetryInterval: 5 * time.Millisecond,
	})

	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if fakeGateway.readinessChecks < 2 {
		t.Fatalf("expected at least two readiness checks, got %d", fakeGateway.readinessChecks)
	}
}

func TestInitializePersistenceUseCaseExecuteReadinessTimeout(t *testing.T) {
	fakeGateway := &fakePersistenceGateway{
		readinessErrors: []*apperrors.AppError{
			apperrors.NewInternal("DB_CONNECT_FAILED", "failed", nil),
		},
	}
	useCase := NewInitializePersistenceUseCase(fakeGateway)

	appErr := useCase.Execute(context.Background(), dto.InitializePersistenceCommand{
		ReadinessTimeout:       30 * time.Millisecond,
		ReadinessRetryInterval: 10 * time.Millisecond,
	})

	if appErr == nil {
		t.Fatalf("expected timeout error")
	}

	if appErr.Code != "DB_READINESS_TIMEOUT" {
		t.Fatalf("expected DB_READINESS_TIMEOUT, got %s", appErr.Code)
	}

	if fakeGateway.migrationRuns != 0 {
		t.Fatalf("migrations must not run before readiness, got %d", fakeGateway.migrationRuns)
	}
}

func TestInitializePersistenceUseCaseExecuteInvalidCommand(t *testing.T) {
	useCase := NewInitializePersistenceUseCase(&fakePersistenceGateway{})

	appErr := useCase.Execute(context.Background(), dto.InitializePersistenceCommand{
		ReadinessTimeout:       0,
		ReadinessRetryInterval: 5 * time.Millisecond,
	})
	if appErr == nil || appErr.Code != "READINESS_TIMEOUT_INVALID" {
		t.Fatalf("expected READINESS_TIMEOUT_INVALID, got %+v", appErr)
	}

	appErr = useCase.Execute(context.Background(), dto.InitializePersistenceCommand{
		ReadinessTimeout:       50 * time.Millisecond,
		ReadinessRetryInterval: 0,
	})
	if appErr == nil || appErr.Code != "READINESS_RETRY_INTERVAL_INVALID" {
		t.Fatalf("expected READINESS_RETRY_INTERVAL_INVALID, got %+v", appErr)
	}
}

func TestGetHealthUseCaseExecute(t *testing.T) {
	useCase := NewGetHealthUseCase()

	output, appErr := useCase.Execute(context.Background(), dto.GetHealthCommand{})
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if output.Status != "ok" {
		t.Fatalf("expected ok, got %q", output.Status)
	}
}

type fakePersistenceGateway struct {
	readinessErrors []*apperrors.AppError
	readinessChecks int
	migrationRuns   int
	migrationErr    *apperrors.AppError
}

func (f *fakePersistenceGateway) CheckReadiness(context.Context) *apperrors.AppError {
	f.readinessChecks++
	if len(f.readinessErrors) == 0 {
		return nil
	}

	appErr := f.readinessErrors[0]
	if len(f.readinessErrors) > 1 {
		f.readinessErrors = f.readinessErrors[1:]
	}

	return appErr
}

func (f *fakePersistenceGateway) RunMigrations(context.Context) *apperrors.AppError {
	f.migrationRuns++

	return f.migrationErr
}
