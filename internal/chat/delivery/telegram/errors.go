package telegram

import (
	"errors"

	"travel-assistant/internal/chat"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, chat.ErrEmptyMessage):
		return helpMessage
	default:
		return failureMessage
	}
}
