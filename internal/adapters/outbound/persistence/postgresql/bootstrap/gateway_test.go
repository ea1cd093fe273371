//go:build !integration

package bootstrap

import (
	"context"
	"testing"
)

func TestRunMigrationsCanceledContext(t *testing.T) {
	gateway := NewGateway(
		"postgres://localhost:5432/upilinker",
		"localhost:5432/upilinker",
		"migrations",
		nil,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	appErr := gateway.RunMigrations(ctx)
	if appErr == nil {
		t.Fatalf("expected error for canceled context")
	}
	if appErr.Code != "DB_MIGRATION_CONTEXT_CANCELED" {
		t.Fatalf("expected DB_MIGRATION_CONTEXT_CANCELED, got %s", appErr.Code)
	}
}

func TestRunMigrationsMissingSourceDir(t *testing.T) {
	gateway := NewGateway(
		"postgres://localhost:5432/upilinker",
		"localhost:5432/upilinker",
		"does/not/exist",
		nil,
	)

	appErr := gateway.RunMigrations(context.Background())
	if appErr == nil {
		t.Fatalf("expected error for missing migrations directory")
	}
	if appErr.Code != "DB_MIGRATION_SETUP_FAILED" {
		t.Fatalf("expected DB_MIGRATION_SETUP_FAILED, got %s", appErr.Code)
	}
}
