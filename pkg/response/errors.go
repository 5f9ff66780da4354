package response

import "net/http"

// HTTPError is a domain error already mapped to an HTTP status.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrNotFound        = NewHTTPError(http.StatusNotFound, "Not Found")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down")
)
