package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"serverless-fetch-go/internal/config"
)

// RateLimiter returns a per-IP limiter for cfg, or nil when disabled.
// Every admitted request costs one outbound fetch, so the limit bounds
// upstream traffic as well.
func RateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if !cfg.Enabled {
		return nil
	}
	store := echomw.NewRateLimiterMemoryStore(rate.Limit(cfg.RequestsPerSecond))
	return echomw.RateLimiter(store)
}
