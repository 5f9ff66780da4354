package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/chat"
	pkgLog "travel-assistant/pkg/log"
	pkgResponse "travel-assistant/pkg/response"
	pkgTelegram "travel-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and answers in a background goroutine, since
// analysis, weather lookup and generation can outlast Telegram's webhook timeout.
// @Summary Telegram webhook
// @Description Receives Telegram updates; one conversation per chat.
// @Tags Telegram
// @Accept json
// @Produce json
// @Success 200 {object} pkgResponse.Resp
// @Failure 401 {object} pkgResponse.Resp "Bad secret token"
// @Router /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token")
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, polls, channel posts)
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := pkgLog.WithRequestID(context.Background(), fmt.Sprintf("tg-%d", update.UpdateID))
		bgCtx, cancel := context.WithTimeout(bgCtx, processTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			// Best-effort error notification to user
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, errorMessage(err))
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sessionID := sessionFor(msg.Chat.ID)

	switch command(text) {
	case commandStart:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, welcomeMessage, pkgTelegram.ParseMarkdown)
	case commandHelp:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpMessage, pkgTelegram.ParseMarkdown)
	case commandClear:
		if err := h.uc.ClearHistory(ctx, sessionID); err != nil && !errors.Is(err, chat.ErrSessionNotFound) {
			return err
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, clearedMessage)
	}

	if err := h.bot.SendChatAction(ctx, msg.Chat.ID, pkgTelegram.ActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	output, err := h.uc.SendMessage(ctx, chat.SendMessageInput{
		SessionID:       sessionID,
		Message:         text,
		CreateIfMissing: true,
	})
	if err != nil {
		return fmt.Errorf("uc.SendMessage: %w", err)
	}

	// model output is free text, Telegram's Markdown parser rejects unbalanced markup
	return h.bot.SendMessage(ctx, msg.Chat.ID, output.Reply)
}

// command returns the bot command in text without any @botname suffix, or "".
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}

func sessionFor(chatID int64) string {
	return fmt.Sprintf("%s%d", sessionPrefix, chatID)
}
