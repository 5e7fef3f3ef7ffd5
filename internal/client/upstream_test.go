package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"serverless-fetch-go/internal/config"
	"serverless-fetch-go/internal/metrics"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUpstreamClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); ua != userAgent {
			t.Errorf("User-Agent = %q, want %q", ua, userAgent)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<h1>hello</h1>"))
	}))
	defer srv.Close()

	c := NewUpstreamClient(config.Default(), discardLogger(), nil)

	resp, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(body) != "<h1>hello</h1>" {
		t.Errorf("body = %q, want %q", string(body), "<h1>hello</h1>")
	}
}

func TestUpstreamClient_Get_Error(t *testing.T) {
	c := NewUpstreamClient(config.Default(), discardLogger(), nil)

	_, err := c.Get(context.Background(), "http://127.0.0.1:1/nonexistent")
	if err == nil {
		t.Fatal("Get() expected error for unreachable host, got nil")
	}
}

func TestUpstreamClient_Get_BadURL(t *testing.T) {
	c := NewUpstreamClient(config.Default(), discardLogger(), nil)

	_, err := c.Get(context.Background(), "://missing-scheme")
	if err == nil {
		t.Fatal("Get() expected error for malformed URL, got nil")
	}
}

func TestUpstreamClient_Get_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewUpstreamClient(config.Default(), discardLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, srv.URL)
	if err == nil {
		t.Fatal("Get() expected error for canceled context, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled in chain", err)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestUpstreamClient_CustomTransport(t *testing.T) {
	var calls int
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{
			StatusCode: http.StatusTeapot,
			Header:     http.Header{},
			Body:       io.NopCloser(http.NoBody),
			Request:    r,
		}, nil
	})

	m := metrics.New()
	c := NewUpstreamClientWithTransport(discardLogger(), m, rt)

	resp, err := c.Get(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	_ = resp.Body.Close()

	if calls != 1 {
		t.Errorf("transport calls = %d, want 1", calls)
	}
	if got := testutil.ToFloat64(m.UpstreamResponses.WithLabelValues("418")); got != 1 {
		t.Errorf("upstream_responses_total{status_code=418} = %v, want 1", got)
	}
}
