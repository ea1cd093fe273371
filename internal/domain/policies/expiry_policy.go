package policies

import "time"

// IsExpired reports whether a payment request with the given optional expiry
// is void at the given instant. Expiry is evaluated only at display time;
// nothing deletes or mutates an expired request.
func IsExpired(expiresAt *time.Time, at time.Time) bool {
	if expiresAt == nil {
		return false
	}

	return at.After(*expiresAt)
}

const idempotencyTTLBaseline = 24 * time.Hour

// ResolveIdempotencyExpiry keeps an idempotency record alive for at least a
// day, or through the request's own expiry when that is later.
func ResolveIdempotencyExpiry(createdAt time.Time, requestExpiresAt *time.Time) time.Time {
	resolved := createdAt.Add(idempotencyTTLBaseline)
	if requestExpiresAt != nil && requestExpiresAt.After(resolved) {
		resolved = *requestExpiresAt
	}

	return resolved
}
