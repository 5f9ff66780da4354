package gateway

// Log prefixes
const (
	LogPrefixComplete     = "internal.gateway.Complete"
	LogPrefixCompleteJSON = "internal.gateway.CompleteJSON"
)

// Apology texts returned by Complete instead of an error.
const (
	RateLimitApology   = "Sorry, I've reached the API rate limit. Please try again in a few minutes."
	ErrorApologyPrefix = "Sorry, I encountered an error: "
)

// JSON error kinds
const (
	ErrKindRateLimit  = "rate_limit"
	ErrKindParseError = "JSON parse error"
)

const (
	rateLimitApologyMarker = "Sorry, I've reached the API rate limit"
	errorApologyMarker     = "Sorry, I encountered an error"
)

const rateLimitJSONMessage = "API rate limit reached. Please try again in a few minutes."
