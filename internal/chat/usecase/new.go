package usecase

import (
	"travel-assistant/internal/router"
	"travel-assistant/internal/session"
	"travel-assistant/pkg/log"
)

// Log prefixes
const (
	LogPrefixCreateSession = "internal.chat.usecase.CreateSession"
	LogPrefixSendMessage   = "internal.chat.usecase.SendMessage"
	LogPrefixAnalyze       = "internal.chat.usecase.Analyze"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	sessions         *session.Manager
	router           router.Router
	defaultReasoning bool
	l                log.Logger
}

// New creates a chat UseCase. defaultReasoning applies to sessions that do not ask for a mode.
func New(sessions *session.Manager, r router.Router, defaultReasoning bool, l log.Logger) *implUseCase {
	return &implUseCase{
		sessions:         sessions,
		router:           r,
		defaultReasoning: defaultReasoning,
		l:                l,
	}
}
