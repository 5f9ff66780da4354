package telegram

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/chat"
	"travel-assistant/internal/model"
	pkgLog "travel-assistant/pkg/log"
	pkgTelegram "travel-assistant/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockUseCase struct {
	mu         sync.Mutex
	sendInput  chat.SendMessageInput
	sendOutput chat.SendMessageOutput
	sendErr    error
	cleared    string
	clearErr   error
}

func (m *mockUseCase) CreateSession(ctx context.Context, input chat.CreateSessionInput) (chat.CreateSessionOutput, error) {
	return chat.CreateSessionOutput{}, nil
}
func (m *mockUseCase) EndSession(ctx context.Context, sessionID string) error { return nil }
func (m *mockUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendInput = input
	return m.sendOutput, m.sendErr
}
func (m *mockUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{}, nil
}
func (m *mockUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	m.cleared = sessionID
	return m.clearErr
}
func (m *mockUseCase) Analyze(ctx context.Context, input chat.AnalyzeInput) (chat.AnalyzeOutput, error) {
	return chat.AnalyzeOutput{}, nil
}

type sentMessage struct {
	chatID    int64
	text      string
	parseMode string
}

type mockBot struct {
	mu      sync.Mutex
	sent    []sentMessage
	actions []string
	done    chan struct{}
}

func newMockBot() *mockBot {
	return &mockBot{done: make(chan struct{}, 10)}
}

func (m *mockBot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error { return nil }
func (m *mockBot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return m.SendMessageWithMode(ctx, chatID, text, "")
}
func (m *mockBot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	m.mu.Lock()
	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text, parseMode: parseMode})
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}
func (m *mockBot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, action)
	return nil
}

func (m *mockBot) last() sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

func newTestHandler(uc *mockUseCase, bot *mockBot, secret string) *handler {
	return &handler{l: pkgLog.NewNop(), uc: uc, bot: bot, secret: secret}
}

func textMessage(chatID int64, text string) *pkgTelegram.Message {
	return &pkgTelegram.Message{MessageID: 1, Chat: &pkgTelegram.Chat{ID: chatID, Type: "private"}, Text: text}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestProcessMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Question goes to the chat session of the chat", func(t *testing.T) {
		uc := &mockUseCase{sendOutput: chat.SendMessageOutput{Reply: "Pack a warm coat.", Category: model.CategoryPacking}}
		bot := newMockBot()
		h := newTestHandler(uc, bot, "")

		if err := h.processMessage(ctx, textMessage(42, "What should I pack for Tokyo in December?")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.sendInput.SessionID != "telegram_42" || !uc.sendInput.CreateIfMissing {
			t.Errorf("unexpected input %+v", uc.sendInput)
		}
		if got := bot.last(); got.text != "Pack a warm coat." || got.parseMode != "" {
			t.Errorf("unexpected reply %+v", got)
		}
		if len(bot.actions) != 1 || bot.actions[0] != pkgTelegram.ActionTyping {
			t.Errorf("expected typing action, got %v", bot.actions)
		}
	})

	t.Run("Commands", func(t *testing.T) {
		cases := []struct {
			text      string
			want      string
			parseMode string
		}{
			{"/start", welcomeMessage, pkgTelegram.ParseMarkdown},
			{"/help@travel_bot", helpMessage, pkgTelegram.ParseMarkdown},
			{"/clear", clearedMessage, ""},
		}
		for _, tc := range cases {
			t.Run(tc.text, func(t *testing.T) {
				uc := &mockUseCase{}
				bot := newMockBot()
				h := newTestHandler(uc, bot, "")

				if err := h.processMessage(ctx, textMessage(7, tc.text)); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got := bot.last(); got.text != tc.want || got.parseMode != tc.parseMode {
					t.Errorf("unexpected reply %+v", got)
				}
				if uc.sendInput.Message != "" {
					t.Error("commands must not reach the assistant")
				}
			})
		}
	})

	t.Run("Clear without session", func(t *testing.T) {
		uc := &mockUseCase{clearErr: chat.ErrSessionNotFound}
		bot := newMockBot()
		h := newTestHandler(uc, bot, "")

		if err := h.processMessage(ctx, textMessage(7, "/clear")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.cleared != "telegram_7" {
			t.Errorf("expected telegram_7 to be cleared, got %q", uc.cleared)
		}
	})

	t.Run("Empty text is ignored", func(t *testing.T) {
		bot := newMockBot()
		h := newTestHandler(&mockUseCase{}, bot, "")

		if err := h.processMessage(ctx, textMessage(7, "   ")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bot.sent) != 0 {
			t.Errorf("expected no reply, got %d", len(bot.sent))
		}
	})

	t.Run("Use case error", func(t *testing.T) {
		uc := &mockUseCase{sendErr: errors.New("boom")}
		h := newTestHandler(uc, newMockBot(), "")

		if err := h.processMessage(ctx, textMessage(7, "Hello")); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestHandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(h *handler, body, secret string) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/webhook/telegram", h.HandleWebhook)

		req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if secret != "" {
			req.Header.Set(pkgTelegram.HeaderSecretToken, secret)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Accepted and answered in background", func(t *testing.T) {
		uc := &mockUseCase{sendOutput: chat.SendMessageOutput{Reply: "Sunny in Rome."}}
		bot := newMockBot()
		h := newTestHandler(uc, bot, "s3cret")

		w := post(h, `{"update_id": 9, "message": {"message_id": 1, "chat": {"id": 5, "type": "private"}, "text": "Weather in Rome?"}}`, "s3cret")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "accepted") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}

		select {
		case <-bot.done:
		case <-time.After(time.Second):
			t.Fatal("background reply was not sent")
		}
		if got := bot.last(); got.chatID != 5 || got.text != "Sunny in Rome." {
			t.Errorf("unexpected reply %+v", got)
		}
	})

	t.Run("Bad secret", func(t *testing.T) {
		h := newTestHandler(&mockUseCase{}, newMockBot(), "s3cret")

		w := post(h, `{"update_id": 1}`, "wrong")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Non-message update is ignored", func(t *testing.T) {
		h := newTestHandler(&mockUseCase{}, newMockBot(), "")

		w := post(h, `{"update_id": 1}`, "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("Malformed body", func(t *testing.T) {
		h := newTestHandler(&mockUseCase{}, newMockBot(), "")

		w := post(h, `{not json`, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
