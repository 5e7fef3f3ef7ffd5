// Package service implements the platform-independent fetch-and-respond core.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"serverless-fetch-go/internal/client"
	"serverless-fetch-go/internal/config"
	"serverless-fetch-go/internal/metrics"
	"serverless-fetch-go/internal/model"
)

// Handler is implemented by the fetch core and wrapped by every platform adapter.
type Handler interface {
	Handle(ctx context.Context, req *model.Request) (*model.Response, error)
}

// ContentTypeHTML is set on every successful response.
const ContentTypeHTML = "text/html; charset=utf-8"

// FetchService answers each inbound request with a fresh copy of the target page.
type FetchService struct {
	client  *client.UpstreamClient
	logger  *slog.Logger
	metrics *metrics.Metrics
	target  string
}

var _ Handler = (*FetchService)(nil)

// NewFetchService creates a FetchService for cfg.Target.URL.
// The metrics parameter is optional.
func NewFetchService(c *client.UpstreamClient, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*FetchService, error) {
	u, err := url.Parse(cfg.Target.URL)
	if err != nil {
		return nil, fmt.Errorf("parse target url: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("target url %q is not absolute", cfg.Target.URL)
	}

	return &FetchService{
		client:  c,
		logger:  logger.With("component", "fetch_service"),
		metrics: m,
		target:  u.String(),
	}, nil
}

// Target returns the URL fetched on every request.
func (s *FetchService) Target() string {
	return s.target
}

// Handle ignores req apart from logging, fetches the target and wraps the
// text in a 200 response. Errors are *FetchError values.
func (s *FetchService) Handle(ctx context.Context, req *model.Request) (*model.Response, error) {
	if req != nil {
		s.logger.Debug("inbound request", "method", req.Method, "path", req.Path)
	}

	text, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{ContentTypeHTML}},
		Body:       text,
	}, nil
}

// Fetch performs the outbound GET and returns the body as text. The
// upstream status code is not inspected. Nothing is cached.
func (s *FetchService) Fetch(ctx context.Context) (string, error) {
	resp, err := s.client.Get(ctx, s.target)
	if err != nil {
		return "", s.fail(ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	text, err := decodeText(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", s.fail(ErrDecode, err)
	}
	return text, nil
}

func (s *FetchService) fail(kind, err error) error {
	s.logger.Warn("fetch failed", "kind", kind.Error(), "err", err)
	if s.metrics != nil {
		label := "fetch"
		if kind == ErrDecode {
			label = "decode"
		}
		s.metrics.UpstreamFailures.WithLabelValues(label).Inc()
	}
	return &FetchError{Kind: kind, Err: err}
}
