package test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/chat"
	"travel-assistant/internal/model"
	pkgLog "travel-assistant/pkg/log"
)

type mockUseCase struct {
	analyzeInputs []chat.AnalyzeInput
	analysis      model.AnalysisResult
	sendInput     chat.SendMessageInput
	reply         chat.SendMessageOutput
	ended         string
	endErr        error
	sendErr       error
}

func (m *mockUseCase) CreateSession(ctx context.Context, input chat.CreateSessionInput) (chat.CreateSessionOutput, error) {
	return chat.CreateSessionOutput{}, nil
}
func (m *mockUseCase) EndSession(ctx context.Context, sessionID string) error {
	m.ended = sessionID
	return m.endErr
}
func (m *mockUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	m.sendInput = input
	return m.reply, m.sendErr
}
func (m *mockUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{}, nil
}
func (m *mockUseCase) ClearHistory(ctx context.Context, sessionID string) error { return nil }
func (m *mockUseCase) Analyze(ctx context.Context, input chat.AnalyzeInput) (chat.AnalyzeOutput, error) {
	m.analyzeInputs = append(m.analyzeInputs, input)
	if input.SessionID != "" {
		return chat.AnalyzeOutput{}, chat.ErrSessionNotFound
	}
	return chat.AnalyzeOutput{Analysis: m.analysis}, nil
}

func newTestEngine(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/test"), New(pkgLog.NewNop(), uc))
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleAnalyze(t *testing.T) {
	uc := &mockUseCase{analysis: model.AnalysisResult{
		Category:     model.CategoryPacking,
		NeedsWeather: true,
		Mode:         model.ModeClimate,
		City:         "Tokyo",
		When:         "December",
		Confidence:   0.9,
	}}

	w := post(newTestEngine(uc), "/test/analyze", `{"text": "What should I pack for Tokyo in December?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AnalyzeResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Category != "PACKING" || resp.Mode != "climate" || resp.City != "Tokyo" || !resp.NeedsWeather {
		t.Errorf("unexpected response %+v", resp)
	}
	if len(uc.analyzeInputs) != 2 || uc.analyzeInputs[0].SessionID != "test_999999999" {
		t.Errorf("expected session lookup then contextless retry, got %+v", uc.analyzeInputs)
	}
}

func TestHandleTestMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{reply: chat.SendMessageOutput{Reply: "Visit in spring.", Category: model.CategoryDestination}}
		w := post(newTestEngine(uc), "/test/message", `{"text": "Is May good for Rome?", "user_id": 5}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp TestMessageResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		if !resp.Success || resp.Reply != "Visit in spring." || resp.Category != "DESTINATION" {
			t.Errorf("unexpected response %+v", resp)
		}
		if uc.sendInput.SessionID != "test_5" || !uc.sendInput.CreateIfMissing {
			t.Errorf("unexpected input %+v", uc.sendInput)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		uc := &mockUseCase{sendErr: errors.New("boom")}
		w := post(newTestEngine(uc), "/test/message", `{"text": "hi"}`)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})

	t.Run("Missing text", func(t *testing.T) {
		w := post(newTestEngine(&mockUseCase{}), "/test/message", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestHandleResetSession(t *testing.T) {
	uc := &mockUseCase{endErr: chat.ErrSessionNotFound}
	w := post(newTestEngine(uc), "/test/reset", `{"user_id": 12}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.ended != "test_12" {
		t.Errorf("expected test_12 to be ended, got %q", uc.ended)
	}
}

func TestHandleHealthCheck(t *testing.T) {
	r := newTestEngine(&mockUseCase{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
