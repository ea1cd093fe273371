package valueobjects

import (
	"strings"

	apperrors "upilinker/internal/shared_kernel/errors"
)

const minUPIIDLength = 5

// NormalizeUPIID validates the `name@bank` shape of a Virtual Payment
// Address: at least 5 characters and containing "@". Anything beyond that is
// the payer app's problem.
func NormalizeUPIID(raw string) (string, *apperrors.AppError) {
	value := strings.TrimSpace(raw)
	if len(value) < minUPIIDLength {
		return "", apperrors.NewValidation(
			"invalid_request",
			"upi_id must be at least 5 characters",
			map[string]any{"field": "upi_id"},
		)
	}
	if !strings.Contains(value, "@") {
		return "", apperrors.NewValidation(
			"invalid_request",
			"upi_id must contain @",
			map[string]any{"field": "upi_id"},
		)
	}

	return value, nil
}
