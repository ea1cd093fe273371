package valueobjects

import apperrors "upilinker/internal/shared_kernel/errors"

type PaymentRequestStatus string

const (
	PaymentRequestStatusPending   PaymentRequestStatus = "pending"
	PaymentRequestStatusCompleted PaymentRequestStatus = "completed"
	PaymentRequestStatusFailed    PaymentRequestStatus = "failed"
)

func NewPendingPaymentRequestStatus() PaymentRequestStatus {
	return PaymentRequestStatusPending
}

func ParsePaymentRequestStatus(raw string) (PaymentRequestStatus, *apperrors.AppError) {
	switch raw {
	case string(PaymentRequestStatusPending):
		return PaymentRequestStatusPending, nil
	case string(PaymentRequestStatusCompleted):
		return PaymentRequestStatusCompleted, nil
	case string(PaymentRequestStatusFailed):
		return PaymentRequestStatusFailed, nil
	default:
		return "", apperrors.NewValidation(
			"payment_request_status_invalid",
			"payment request status is invalid",
			map[string]any{"status": raw},
		)
	}
}

// IsTerminal reports whether no further status transition is allowed.
func (s PaymentRequestStatus) IsTerminal() bool {
	return s == PaymentRequestStatusCompleted || s == PaymentRequestStatusFailed
}

// CanTransitionTo enforces the lifecycle: pending may move to completed or
// failed; completed and failed accept nothing.
func (s PaymentRequestStatus) CanTransitionTo(next PaymentRequestStatus) bool {
	if s != PaymentRequestStatusPending {
		return false
	}

	return next == PaymentRequestStatusCompleted || next == PaymentRequestStatusFailed
}

func (s PaymentRequestStatus) String() string {
	return string(s)
}
