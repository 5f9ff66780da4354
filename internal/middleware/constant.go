package middleware

import "time"

const (
	HeaderRequestID   = "X-Request-ID"
	HeaderForwardedIP = "X-Forwarded-For"
	HeaderRealIP      = "X-Real-IP"

	// ContextKeyRequestID is the gin context key holding the request id.
	ContextKeyRequestID = "request_id"

	rateLimiterSize = 1000
	rateLimiterTTL  = 5 * time.Minute
)
