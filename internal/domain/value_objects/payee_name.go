package valueobjects

import (
	"strings"

	apperrors "upilinker/internal/shared_kernel/errors"
)

func NormalizePayeeName(raw string) (string, *apperrors.AppError) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", apperrors.NewValidation(
			"invalid_request",
			"payee_name is required",
			map[string]any{"field": "payee_name"},
		)
	}

	return value, nil
}
