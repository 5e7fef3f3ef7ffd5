// Package client provides the outbound HTTP client used to fetch the target page.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"serverless-fetch-go/internal/config"
	"serverless-fetch-go/internal/metrics"
)

const userAgent = "serverless-fetch-go/1.0"

// UpstreamClient issues the single outbound GET per inbound request.
type UpstreamClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewUpstreamClient creates an UpstreamClient with connection pooling.
// No overall client timeout is set; the hosting runtime bounds each call.
// The metrics parameter is optional; pass nil to disable upstream metrics recording.
func NewUpstreamClient(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *UpstreamClient {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        cfg.Target.IdleConnections,
		MaxIdleConnsPerHost: cfg.Target.IdleConnections,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	return NewUpstreamClientWithTransport(logger, m, transport)
}

// NewUpstreamClientWithTransport creates an UpstreamClient that sends through rt.
// Runtimes with their own outbound facility (Spin, js/wasm) pass theirs here;
// a nil rt selects http.DefaultTransport.
func NewUpstreamClientWithTransport(logger *slog.Logger, m *metrics.Metrics, rt http.RoundTripper) *UpstreamClient {
	return &UpstreamClient{
		httpClient: &http.Client{Transport: rt},
		logger:     logger.With("component", "upstream_client"),
		metrics:    m,
	}
}

// Get performs one GET against url. There are no retries.
// The caller is responsible for closing the response body.
// Canceling ctx aborts the in-flight request.
func (c *UpstreamClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("upstream request", "url", url)

	start := time.Now()
	resp, err := c.httpClient.Do(req) //nolint:bodyclose // body ownership transfers to caller
	elapsed := time.Since(start)

	if c.metrics != nil {
		c.metrics.UpstreamDuration.Observe(elapsed.Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}

	if c.metrics != nil {
		c.metrics.UpstreamResponses.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	}

	c.logger.Debug("upstream response",
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds(),
	)

	return resp, nil
}
