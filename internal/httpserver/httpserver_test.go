package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"travel-assistant/config"
	"travel-assistant/internal/chat"
	"travel-assistant/internal/middleware"
	"travel-assistant/internal/model"
	"travel-assistant/internal/test"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
	"travel-assistant/pkg/response"
)

type stubUseCase struct{}

func (stubUseCase) CreateSession(ctx context.Context, input chat.CreateSessionInput) (chat.CreateSessionOutput, error) {
	return chat.CreateSessionOutput{SessionID: "sess-1", CreatedAt: time.Now()}, nil
}
func (stubUseCase) EndSession(ctx context.Context, sessionID string) error { return nil }
func (stubUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	return chat.SendMessageOutput{SessionID: input.SessionID, Reply: "ok", Category: model.CategoryGeneral}, nil
}
func (stubUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{SessionID: sessionID}, nil
}
func (stubUseCase) ClearHistory(ctx context.Context, sessionID string) error { return nil }
func (stubUseCase) Analyze(ctx context.Context, input chat.AnalyzeInput) (chat.AnalyzeOutput, error) {
	return chat.AnalyzeOutput{}, nil
}

func newTestServer(t *testing.T, env string, m *metrics.Metrics) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:         l,
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    env,
		AllowedOrigins: []string{"https://travel.example.com"},
		Middleware:     middleware.New(l, config.RateLimitConfig{}),
		ChatUseCase:    stubUseCase{},
		Metrics:        m,
		TestHandler:    test.New(l, stubUseCase{}),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, string(model.EnvironmentDevelopment), metrics.New())

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := serve(srv, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var resp response.Resp
			json.Unmarshal(w.Body.Bytes(), &resp)
			data, _ := resp.Data.(map[string]any)
			if data["service"] != ServiceName {
				t.Errorf("unexpected body %s", w.Body.String())
			}
			if w.Header().Get(middleware.HeaderRequestID) == "" {
				t.Error("expected request id header")
			}
		})
	}

	t.Run("/metrics", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestChatRoutesMounted(t *testing.T) {
	srv := newTestServer(t, string(model.EnvironmentDevelopment), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/messages", strings.NewReader(`{"message": "hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(srv, req)

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"reply":"ok"`) {
		t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
	}

	// no metrics configured
	if w := serve(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil)); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for /metrics without metrics, got %d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, string(model.EnvironmentDevelopment), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
	req.Header.Set("Origin", "https://travel.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(srv, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://travel.example.com" {
		t.Errorf("expected allowed origin, got %q", got)
	}
}

func TestTestRoutesHiddenInProduction(t *testing.T) {
	dev := newTestServer(t, string(model.EnvironmentDevelopment), nil)
	if w := serve(dev, httptest.NewRequest(http.MethodGet, "/test/health", nil)); w.Code != http.StatusOK {
		t.Errorf("development: expected 200, got %d", w.Code)
	}

	prod := newTestServer(t, string(model.EnvironmentProduction), nil)
	if w := serve(prod, httptest.NewRequest(http.MethodGet, "/test/health", nil)); w.Code != http.StatusNotFound {
		t.Errorf("production: expected 404, got %d", w.Code)
	}
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	if _, err := New(l, Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected error without chat use case")
	}
	if _, err := New(l, Config{Mode: gin.TestMode, ChatUseCase: stubUseCase{}}); err == nil {
		t.Error("expected error without port")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:            18089,
		Mode:            gin.TestMode,
		Middleware:      middleware.New(l, config.RateLimitConfig{}),
		ChatUseCase:     stubUseCase{},
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
