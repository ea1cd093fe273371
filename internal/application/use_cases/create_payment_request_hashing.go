package use_cases

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	apperrors "upilinker/internal/shared_kernel/errors"
)

const hashAlgorithmSHA256 = "sha256"

type createRequestHashInput struct {
	PayeeName string     `json:"payee_name"`
	UPIID     string     `json:"upi_id"`
	Amount    *float64   `json:"amount,omitempty"`
	Note      string     `json:"note"`
	Flexible  bool       `json:"flexible"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// hashCreateRequest fingerprints the creation payload so an idempotency key
// replay can be told apart from key reuse with a different form.
func hashCreateRequest(input createRequestHashInput) (string, *apperrors.AppError) {
	encoded, err := json.Marshal(input)
	if err != nil {
		return "", apperrors.NewInternal(
			"idempotency_hash_payload_invalid",
			"failed to serialize request payload",
			map[string]any{"error": err.Error()},
		)
	}

	digest := sha256.Sum256(encoded)
	return hex.EncodeToString(digest[:]), nil
}
