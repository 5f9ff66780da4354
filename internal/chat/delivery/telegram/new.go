package telegram

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/chat"
	pkgLog "travel-assistant/pkg/log"
	pkgTelegram "travel-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	uc     chat.UseCase
	bot    pkgTelegram.IBot
	secret string
}

// New creates a new Telegram delivery handler.
// When secret is set, updates without the matching secret token header are rejected.
func New(l pkgLog.Logger, uc chat.UseCase, bot pkgTelegram.IBot, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}
