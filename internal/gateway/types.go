package gateway

import "time"

// Config tunes generation and pacing.
type Config struct {
	Temperature   float64
	HistoryWindow int           // most recent turns forwarded to the model
	ToolMaxTokens int           // token limit for CompleteJSON and for Complete when maxTokens <= 0
	CallDelay     time.Duration // minimum spacing between two model calls
}

// JSONError is the failure variant of a JSONResult.
type JSONError struct {
	Kind        string // ErrKindRateLimit or ErrKindParseError
	Message     string
	RawResponse string
}

func (e *JSONError) Error() string {
	if e.Message != "" {
		return e.Kind + ": " + e.Message
	}
	return e.Kind
}

// JSONResult holds either the decoded object or an error. Exactly one is set.
type JSONResult struct {
	Data map[string]any
	Err  *JSONError
}

// RateLimited reports whether the result carries a rate limit error.
func (r JSONResult) RateLimited() bool {
	return r.Err != nil && r.Err.Kind == ErrKindRateLimit
}
