package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDetectNgrokURL(t *testing.T) {
	ngrokRetryInterval = time.Millisecond
	defer func() { ngrokRetryInterval = 3 * time.Second }()

	t.Run("Prefers https", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != ngrokTunnelsPath {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
		}))
		defer ts.Close()

		got, err := detectNgrokURL(context.Background(), ts.URL+"/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "https://a.ngrok.io" {
			t.Errorf("expected https tunnel, got %s", got)
		}
	})

	t.Run("Waits for tunnels", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.Write([]byte(`{"tunnels":[]}`))
				return
			}
			w.Write([]byte(`{"tunnels":[{"public_url":"http://b.ngrok.io","proto":"http"}]}`))
		}))
		defer ts.Close()

		got, err := detectNgrokURL(context.Background(), ts.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "http://b.ngrok.io" || atomic.LoadInt32(&calls) != 3 {
			t.Errorf("got %s after %d calls", got, calls)
		}
	})

	t.Run("Gives up", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels":[]}`))
		}))
		defer ts.Close()

		_, err := detectNgrokURL(context.Background(), ts.URL)
		if !errors.Is(err, errNoTunnels) {
			t.Fatalf("expected errNoTunnels, got %v", err)
		}
	})

	t.Run("Cancelled", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := detectNgrokURL(ctx, ts.URL); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
