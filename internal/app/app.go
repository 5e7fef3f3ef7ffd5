// Package app assembles the fetch core for binaries that use fx.
package app

import (
	"go.uber.org/fx"

	"serverless-fetch-go/internal/client"
	"serverless-fetch-go/internal/config"
	"serverless-fetch-go/internal/logging"
	"serverless-fetch-go/internal/metrics"
	"serverless-fetch-go/internal/service"
)

// Module provides config, logger, metrics, the upstream client and the
// fetch service. The binary supplies *config.CLI.
var Module = fx.Options(
	fx.Provide(
		config.Load,
		logging.New,
		NewMetrics,
		client.NewUpstreamClient,
		service.NewFetchService,
		AsHandler,
	),
)

// NewMetrics returns a metrics set when cfg enables it, nil otherwise.
// Downstream constructors treat nil as "metrics off".
func NewMetrics(cfg *config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New()
}

// AsHandler exposes the fetch service through the adapter-facing interface.
func AsHandler(s *service.FetchService) service.Handler {
	return s
}
