package dto

import "time"

type IdempotencyScope struct {
	PrincipalID string
	HTTPMethod  string
	HTTPPath    string
}

type CreatePaymentRequestCommand struct {
	IdempotencyScope IdempotencyScope
	IdempotencyKey   string
	OwnerID          *string
	PayeeName        string
	UPIID            string
	Amount           *float64
	Note             string
	// Flexible allows the amount to be omitted; the payer enters it at pay
	// time. The main form never sets it, the embed widget always does.
	Flexible  bool
	ExpiresAt *time.Time
	Locale    string
}

type CreatePaymentRequestOutput struct {
	Resource PaymentRequestResource
	Replayed bool
}

type CreatePaymentRequestPersistenceCommand struct {
	ID                   string
	OwnerID              *string
	PayeeName            string
	UPIID                string
	Amount               *float64
	Note                 string
	Status               string
	UPILink              string
	ExpiresAt            *time.Time
	CreatedAt            time.Time
	IdempotencyScope     IdempotencyScope
	IdempotencyKey       string
	RequestHash          string
	HashAlgorithm        string
	IdempotencyExpiresAt time.Time
}

type CreatePaymentRequestPersistenceResult struct {
	Resource PaymentRequestResource
	Replayed bool
}

type PaymentRequestResource struct {
	ID        string     `json:"id"`
	OwnerID   *string    `json:"owner_id,omitempty"`
	Public    bool       `json:"public"`
	PayeeName string     `json:"payee_name"`
	UPIID     string     `json:"upi_id"`
	Amount    *float64   `json:"amount,omitempty"`
	Note      string     `json:"note,omitempty"`
	Status    string     `json:"status"`
	UPILink   string     `json:"upi_link"`
	PayURL    string     `json:"pay_url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type GetPayPageQuery struct {
	ID     string
	Public bool
	// CallerID is the authenticated principal, required for private lookups.
	CallerID *string
	// CustomAmount rebuilds the link at pay time for flexible requests; the
	// stored request is never mutated.
	CustomAmount *float64
	Locale       string
}

type PayPageResource struct {
	Request PaymentRequestResource `json:"request"`
	// UPILink is the effective link: the stored one, or a rebuilt one when a
	// custom amount was supplied for a flexible request.
	UPILink   string   `json:"upi_link"`
	QRCodeURL string   `json:"qr_code_url"`
	Amount    *float64 `json:"amount,omitempty"`
}

type ListPaymentRequestsQuery struct {
	OwnerID string
}

type UpdatePaymentRequestStatusCommand struct {
	OwnerID string
	ID      string
	Status  string
}

type DeletePaymentRequestCommand struct {
	OwnerID string
	ID      string
}

const (
	PaymentRequestEventCreated       = "created"
	PaymentRequestEventStatusChanged = "status_changed"
	PaymentRequestEventDeleted       = "deleted"
)

type PaymentRequestEvent struct {
	Type     string                 `json:"type"`
	OwnerID  string                 `json:"-"`
	Resource PaymentRequestResource `json:"resource"`
}

type WatchPaymentRequestsQuery struct {
	OwnerID string
}
