package entity

import "time"

// IdempotencyKey caches the response of a processed request so a retry
// with the same key replays it instead of repeating the side effect
type IdempotencyKey struct {
	Key          string    `json:"key"`
	Username     string    `json:"username"`
	Endpoint     string    `json:"endpoint"`     // e.g. "POST /api/v1/bills"
	RequestHash  string    `json:"request_hash"` // SHA256 of the request body
	ResponseCode int       `json:"response_code"`
	ResponseBody string    `json:"response_body"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsExpired checks if the idempotency key has expired at now
func (i *IdempotencyKey) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
