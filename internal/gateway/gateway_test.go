package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type mockGenerator struct {
	reply    string
	err      error
	requests []*llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Content: llmprovider.NewTextMessage(llmprovider.RoleAssistant, m.reply)}, nil
}

func newTestGateway(gen Generator, cfg Config) *gateway {
	return New(gen, cfg, log.NewNop(), nil).(*gateway)
}

func turns(n int) []model.Turn {
	out := make([]model.Turn, n)
	for i := range out {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		out[i] = model.Turn{Role: role, Content: strings.Repeat("x", i+1)}
	}
	return out
}

func TestComplete(t *testing.T) {
	t.Run("Sends system, windowed history and user", func(t *testing.T) {
		gen := &mockGenerator{reply: "  Pack layers.  "}
		g := newTestGateway(gen, Config{Temperature: 0.7, HistoryWindow: 4, ToolMaxTokens: 128})

		out := g.Complete(context.Background(), "sys", "Task: pack", turns(7), 1024)
		if out != "Pack layers." {
			t.Errorf("expected trimmed reply, got %q", out)
		}

		req := gen.requests[0]
		if req.SystemInstruction.Text() != "sys" {
			t.Errorf("unexpected system %q", req.SystemInstruction.Text())
		}
		if len(req.Messages) != 5 {
			t.Fatalf("expected 4 history turns + user, got %d", len(req.Messages))
		}
		if req.Messages[0].Text() != "xxxx" {
			t.Errorf("window should start at turn 4, got %q", req.Messages[0].Text())
		}
		if last := req.Messages[4]; last.Role != llmprovider.RoleUser || last.Text() != "Task: pack" {
			t.Errorf("unexpected last message %+v", last)
		}
		if req.MaxTokens != 1024 || req.Temperature != 0.7 {
			t.Errorf("unexpected generation params %d / %v", req.MaxTokens, req.Temperature)
		}
	})

	t.Run("Empty user prompt is omitted", func(t *testing.T) {
		gen := &mockGenerator{reply: "ok"}
		g := newTestGateway(gen, Config{HistoryWindow: 10, ToolMaxTokens: 128})

		g.Complete(context.Background(), "sys", "", turns(1), 0)
		req := gen.requests[0]
		if len(req.Messages) != 1 {
			t.Errorf("expected only the history turn, got %d", len(req.Messages))
		}
		if req.MaxTokens != 128 {
			t.Errorf("expected tool token default, got %d", req.MaxTokens)
		}
	})

	t.Run("Rate limit becomes apology", func(t *testing.T) {
		gen := &mockGenerator{err: &llmprovider.ProviderError{Provider: "groq", Err: llmprovider.ErrProviderRateLimited}}
		g := newTestGateway(gen, Config{})

		out := g.Complete(context.Background(), "sys", "hi", nil, 0)
		if out != RateLimitApology {
			t.Errorf("expected rate limit apology, got %q", out)
		}
		if !IsApology(out) {
			t.Error("IsApology should match")
		}
	})

	t.Run("Other errors become error apology", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("connection refused")}
		g := newTestGateway(gen, Config{})

		out := g.Complete(context.Background(), "sys", "hi", nil, 0)
		if out != ErrorApologyPrefix+"connection refused" {
			t.Errorf("unexpected apology %q", out)
		}
		if !IsApology(out) {
			t.Error("IsApology should match")
		}
	})
}

type slowGenerator struct {
	mockGenerator
	took   time.Duration
	starts []time.Time
	ends   []time.Time
}

func (s *slowGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.starts = append(s.starts, time.Now())
	time.Sleep(s.took)
	s.ends = append(s.ends, time.Now())
	return s.mockGenerator.GenerateContent(ctx, req)
}

func TestComplete_CallDelay(t *testing.T) {
	t.Run("Delay runs after the previous call finished", func(t *testing.T) {
		gen := &slowGenerator{mockGenerator: mockGenerator{reply: "ok"}, took: 60 * time.Millisecond}
		g := newTestGateway(gen, Config{CallDelay: 50 * time.Millisecond})

		g.Complete(context.Background(), "s", "a", nil, 0)
		g.Complete(context.Background(), "s", "b", nil, 0)

		if gap := gen.starts[1].Sub(gen.ends[0]); gap < 40*time.Millisecond {
			t.Errorf("second call started %v after the first finished, want about 50ms", gap)
		}
	})

	t.Run("First call is not delayed", func(t *testing.T) {
		gen := &mockGenerator{reply: "ok"}
		g := newTestGateway(gen, Config{CallDelay: time.Hour})

		done := make(chan struct{})
		go func() {
			g.Complete(context.Background(), "s", "a", nil, 0)
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("first call waited for the delay")
		}
	})

	t.Run("Cancelled wait returns an apology", func(t *testing.T) {
		gen := &mockGenerator{reply: "ok"}
		g := newTestGateway(gen, Config{CallDelay: time.Hour})
		g.Complete(context.Background(), "s", "a", nil, 0)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		if out := g.Complete(ctx, "s", "b", nil, 0); !IsApology(out) {
			t.Errorf("expected apology, got %q", out)
		}
		if len(gen.requests) != 1 {
			t.Errorf("second request must not be sent, got %d", len(gen.requests))
		}
	})

	t.Run("Gateways pace independently", func(t *testing.T) {
		gen := &mockGenerator{reply: "ok"}
		a := newTestGateway(gen, Config{CallDelay: time.Hour})
		b := newTestGateway(gen, Config{CallDelay: time.Hour})
		a.Complete(context.Background(), "s", "a", nil, 0)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if out := b.Complete(ctx, "s", "b", nil, 0); IsApology(out) {
			t.Errorf("second gateway was held by the first: %q", out)
		}
	})
}

func TestComplete_Metrics(t *testing.T) {
	m := metrics.New()
	ok := New(&mockGenerator{reply: "fine"}, Config{}, log.NewNop(), m)
	bad := New(&mockGenerator{err: errors.New("boom")}, Config{}, log.NewNop(), m)

	ok.Complete(context.Background(), "s", "u", nil, 0)
	bad.Complete(context.Background(), "s", "u", nil, 0)

	got, err := testutil.GatherAndCount(m.Registry(), "travel_assistant_llm_calls_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if got != 2 {
		t.Errorf("expected 2 label series, got %d", got)
	}
}

func TestCompleteJSON(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		genErr   error
		wantKind string
		wantKey  string
		wantVal  any
	}{
		{name: "Bare object", reply: `{"category":"WEATHER"}`, wantKey: "category", wantVal: "WEATHER"},
		{name: "Object in prose", reply: `Sure! {"category":"PACKING"} Hope that helps`, wantKey: "category", wantVal: "PACKING"},
		{name: "Fenced object", reply: "```json\n{\"needs_weather\": true}\n```", wantKey: "needs_weather", wantVal: true},
		{name: "No braces", reply: "I cannot classify that.", wantKind: ErrKindParseError},
		{name: "Broken object", reply: `{"category": }`, wantKind: ErrKindParseError},
		{name: "Rate limit text", reply: "Error 429: slow down", wantKind: ErrKindRateLimit},
		{name: "Apology", genErr: &llmprovider.ProviderError{Provider: "groq", Err: llmprovider.ErrProviderRateLimited}, wantKind: ErrKindRateLimit},
		{name: "Error apology", genErr: errors.New("boom"), wantKind: ErrKindRateLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{reply: tt.reply, err: tt.genErr}
			g := newTestGateway(gen, Config{ToolMaxTokens: 128, HistoryWindow: 10})

			res := g.CompleteJSON(context.Background(), "sys", "question")

			if tt.wantKind != "" {
				if res.Err == nil || res.Err.Kind != tt.wantKind {
					t.Fatalf("expected %q error, got %+v", tt.wantKind, res)
				}
				if tt.wantKind == ErrKindParseError && res.Err.RawResponse != strings.TrimSpace(tt.reply) {
					t.Errorf("raw response not kept: %q", res.Err.RawResponse)
				}
				return
			}
			if res.Err != nil {
				t.Fatalf("unexpected error %v", res.Err)
			}
			if res.Data[tt.wantKey] != tt.wantVal {
				t.Errorf("expected %s=%v, got %v", tt.wantKey, tt.wantVal, res.Data[tt.wantKey])
			}
			if len(gen.requests[0].Messages) != 1 || gen.requests[0].MaxTokens != 128 {
				t.Errorf("CompleteJSON must send no history and use tool tokens")
			}
		})
	}
}
