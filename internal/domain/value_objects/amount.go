package valueobjects

import (
	apperrors "upilinker/internal/shared_kernel/errors"
)

// NormalizeAmount validates the requested amount. A nil amount is returned
// unchanged and means a flexible request where the payer enters the amount at
// pay time; when flexible amounts are not allowed the amount is required.
func NormalizeAmount(requested *float64, allowFlexible bool) (*float64, *apperrors.AppError) {
	if requested == nil {
		if allowFlexible {
			return nil, nil
		}

		return nil, apperrors.NewValidation(
			"invalid_request",
			"amount is required",
			map[string]any{"field": "amount"},
		)
	}

	if *requested <= 0 {
		return nil, apperrors.NewValidation(
			"invalid_request",
			"amount must be greater than 0",
			map[string]any{"field": "amount"},
		)
	}

	value := *requested
	return &value, nil
}
