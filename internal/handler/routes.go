package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"serverless-fetch-go/internal/config"
	"serverless-fetch-go/internal/metrics"
)

// RegisterRoutes wires all route handlers onto the Echo instance.
// m may be nil, in which case no metrics endpoint is exposed.
func RegisterRoutes(e *echo.Echo, root *RootHandler, health *HealthHandler, cfg *config.Config, m *metrics.Metrics) {
	e.GET("/", root.Handle)
	e.GET("/healthz", health.Healthz)
	e.GET("/status", health.Status)

	if m != nil {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
	}
}
