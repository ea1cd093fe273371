package entities

import (
	"time"

	valueobjects "upilinker/internal/domain/value_objects"
	"upilinker/internal/domain/upilink"
	apperrors "upilinker/internal/shared_kernel/errors"
)

// PaymentRequest is the sole domain entity: a formatted UPI deep link plus
// the form fields it was built from, owned by a user or anonymous.
type PaymentRequest struct {
	ID        string
	OwnerID   *string
	PayeeName string
	UPIID     string
	Amount    *float64
	Note      string
	Status    valueobjects.PaymentRequestStatus
	UPILink   string
	ExpiresAt *time.Time
	CreatedAt time.Time
}

type NewPaymentRequestInput struct {
	ID        string
	OwnerID   *string
	PayeeName string
	UPIID     string
	Amount    *float64
	Note      string
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// NewPendingPaymentRequest builds the UPI link once at creation time; the
// stored link is served verbatim afterwards.
func NewPendingPaymentRequest(input NewPaymentRequestInput) (PaymentRequest, *apperrors.AppError) {
	if input.ID == "" {
		return PaymentRequest{}, apperrors.NewInternal(
			"payment_request_id_missing",
			"payment request id is required",
			nil,
		)
	}
	if input.ExpiresAt != nil && !input.ExpiresAt.After(input.CreatedAt) {
		return PaymentRequest{}, apperrors.NewValidation(
			"invalid_request",
			"expiry must be in the future",
			map[string]any{"field": "expiry"},
		)
	}

	link := upilink.Build(upilink.Params{
		UPIID:     input.UPIID,
		PayeeName: input.PayeeName,
		Amount:    input.Amount,
		Note:      input.Note,
	})

	request := PaymentRequest{
		ID:        input.ID,
		OwnerID:   input.OwnerID,
		PayeeName: input.PayeeName,
		UPIID:     input.UPIID,
		Amount:    input.Amount,
		Note:      input.Note,
		Status:    valueobjects.NewPendingPaymentRequestStatus(),
		UPILink:   link,
		CreatedAt: input.CreatedAt.UTC(),
	}
	if input.ExpiresAt != nil {
		expiresAt := input.ExpiresAt.UTC()
		request.ExpiresAt = &expiresAt
	}

	return request, nil
}

// IsPublic reports whether the request lives in the public store and is
// retrievable by anyone holding its id.
func (p PaymentRequest) IsPublic() bool {
	return p.OwnerID == nil
}
