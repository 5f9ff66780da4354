package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("weather: not found")

	// ErrTimeout is returned when the request deadline is exceeded.
	ErrTimeout = errors.New("weather: timeout")

	// ErrMalformed covers unbuildable requests and undecodable bodies. Never retried.
	ErrMalformed = errors.New("weather: malformed request or response")

	// ErrMissingAPIKey is returned by New when no key is configured.
	ErrMissingAPIKey = errors.New("weather: API key is required")
)

// APIError is returned for non-200 responses other than 404.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weather API error %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) transient() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
