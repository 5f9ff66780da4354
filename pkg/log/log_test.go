package log

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	t.Run("empty context", func(t *testing.T) {
		if got := RequestID(context.Background()); got != "" {
			t.Errorf("expected empty id, got %q", got)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "abc-123")
		if got := RequestID(ctx); got != "abc-123" {
			t.Errorf("expected abc-123, got %q", got)
		}
	})
}

func TestInit(t *testing.T) {
	cases := []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
		{Level: "not-a-level", Mode: ModeProduction, Encoding: EncodingConsole},
	}

	for _, cfg := range cases {
		l := Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		ctx := WithRequestID(context.Background(), "req-1")
		l.Infof(ctx, "hello %s", "world")
		l.Debug(ctx, "debug line")
	}
}
