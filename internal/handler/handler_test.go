package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"serverless-fetch-go/internal/client"
	"serverless-fetch-go/internal/config"
	"serverless-fetch-go/internal/service"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService builds a FetchService fetching cfg.Target.URL.
func newTestService(t *testing.T, cfg *config.Config) *service.FetchService {
	t.Helper()
	logger := discardLogger()
	svc, err := service.NewFetchService(client.NewUpstreamClient(cfg, logger, nil), cfg, logger, nil)
	if err != nil {
		t.Fatalf("NewFetchService: %v", err)
	}
	return svc
}

// newTransportService builds a FetchService whose outbound calls go through rt.
func newTransportService(t *testing.T, rt http.RoundTripper) *service.FetchService {
	t.Helper()
	logger := discardLogger()
	svc, err := service.NewFetchService(client.NewUpstreamClientWithTransport(logger, nil, rt), config.Default(), logger, nil)
	if err != nil {
		t.Fatalf("NewFetchService: %v", err)
	}
	return svc
}

// refusingTransport fails every request the way a closed port does.
func refusingTransport() http.RoundTripper {
	return roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
}

// staticTransport answers every request with body under contentType.
func staticTransport(contentType, body string) http.RoundTripper {
	return roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{contentType}},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    r,
		}, nil
	})
}
