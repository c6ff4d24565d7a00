package entity

import "time"

// IdempotencyKey stores processed requests to prevent duplicates
type IdempotencyKey struct {
	Key          string    `json:"key"`          // The idempotency key from client
	Endpoint     string    `json:"endpoint"`     // API endpoint (e.g., "POST /checkout")
	ResponseCode int       `json:"responseCode"` // HTTP status code of original response
	ResponseBody string    `json:"responseBody"` // JSON response body (cached)
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"` // Keys expire after 24 hours
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
