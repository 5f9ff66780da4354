package router

import "travel-assistant/internal/model"

// Log prefixes
const (
	LogPrefixAnalyze = "internal.router.Analyze"
)

// Router configuration
const (
	// ContextTurns is how many recent turns are shown to the classifier (two exchanges).
	ContextTurns = 4

	RouterFallbackCategory = model.CategoryGeneral
)

// Fallback reasons
const (
	ReasonRateLimit     = "Rate limit error - using fallback analysis"
	ReasonAnalysisError = "Analysis error"
	ReasonNotProvided   = "No reason provided"
)

// Error messages
const (
	ErrMsgRateLimited     = "rate limit error in analysis"
	ErrMsgJSONParseFailed = "failed to parse analysis JSON, using defaults"
	ErrMsgInvalidCategory = "invalid category, defaulting to GENERAL"
	ErrMsgInvalidMode     = "invalid weather mode, defaulting to none"
)
