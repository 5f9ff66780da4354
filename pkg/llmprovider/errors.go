package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrProviderUnavailable indicates a 5xx or connection failure on the provider side
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrEmptyResponse indicates the provider returned no choices
	ErrEmptyResponse = errors.New("empty response")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classifyStatus maps an HTTP status code returned by a provider API to a sentinel.
func classifyStatus(provider string, status int, err error) error {
	switch {
	case status == 429:
		return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrProviderRateLimited, err)}
	case status == 408 || status == 504:
		return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrProviderTimeout, err)}
	case status >= 500:
		return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrProviderUnavailable, err)}
	case status >= 400:
		return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrInvalidRequest, err)}
	}
	return classifyTransport(provider, err)
}

// classifyTransport maps transport level failures to sentinels.
func classifyTransport(provider string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrProviderTimeout, err)}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrProviderTimeout, err)}
		}
		return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrProviderUnavailable, err)}
	}
	if strings.Contains(strings.ToLower(err.Error()), "rate limit") {
		return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrProviderRateLimited, err)}
	}
	return &ProviderError{Provider: provider, Err: err}
}

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	return errors.Is(err, ErrProviderRateLimited) ||
		errors.Is(err, ErrProviderTimeout) ||
		errors.Is(err, ErrProviderUnavailable)
}

// IsRateLimited reports whether err carries a rate-limit signal.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrProviderRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "rate limit")
}
