package test

const (
	// defaultUserID is used when a request does not name a test user.
	defaultUserID = 999999999
	sessionPrefix = "test_"
)

// TestMessageRequest represents a test message request
type TestMessageRequest struct {
	Text   string `json:"text" binding:"required"`
	UserID int64  `json:"user_id"`
}

// TestMessageResponse represents a test message response
type TestMessageResponse struct {
	Success   bool     `json:"success"`
	Category  string   `json:"category,omitempty"`
	Clarified bool     `json:"clarified"`
	Facts     []string `json:"facts,omitempty"`
	Reply     string   `json:"reply,omitempty"`
	Text      string   `json:"text"`
	UserID    int64    `json:"user_id"`
	Error     string   `json:"error,omitempty"`
	Details   string   `json:"details,omitempty"`
}

// AnalyzeRequest represents an analyzer-only request
type AnalyzeRequest struct {
	Text   string `json:"text" binding:"required"`
	UserID int64  `json:"user_id"`
}

// AnalyzeResponse carries the raw analysis of a message
type AnalyzeResponse struct {
	Success            bool    `json:"success"`
	Category           string  `json:"category"`
	NeedsWeather       bool    `json:"needs_weather"`
	Mode               string  `json:"mode"`
	City               string  `json:"city,omitempty"`
	Country            string  `json:"country,omitempty"`
	When               string  `json:"when,omitempty"`
	NeedsClarification bool    `json:"needs_clarification"`
	Confidence         float64 `json:"confidence"`
	Reason             string  `json:"reason,omitempty"`
	Text               string  `json:"text"`
}

// ResetSessionRequest represents a reset session request
type ResetSessionRequest struct {
	UserID int64 `json:"user_id"`
}

// ResetSessionResponse represents a reset session response
type ResetSessionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
