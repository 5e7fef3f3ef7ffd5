// Package handler holds the echo handlers of the container binary.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"serverless-fetch-go/internal/model"
	"serverless-fetch-go/internal/service"
)

// failurePrefix precedes the error text in a failed response body.
const failurePrefix = "Server failed with "

// RootHandler answers GET / with the fetched target page.
type RootHandler struct {
	service service.Handler
	logger  *slog.Logger
}

// NewRootHandler creates a RootHandler.
func NewRootHandler(svc service.Handler, logger *slog.Logger) *RootHandler {
	return &RootHandler{
		service: svc,
		logger:  logger.With("component", "root_handler"),
	}
}

// Handle fetches the target and returns it as a 200. Unlike the serverless
// adapters it handles failure itself: a 500 whose body carries the
// underlying error text.
func (h *RootHandler) Handle(c echo.Context) error {
	req := c.Request()

	resp, err := h.service.Handle(req.Context(), model.RequestFromHTTP(req))
	if err != nil {
		detail := service.Detail(err)
		h.logger.Error("fetch failed",
			"err", err,
			"detail", detail,
			"path", req.URL.Path,
		)
		return c.String(http.StatusInternalServerError, failurePrefix+detail)
	}

	return c.String(resp.StatusCode, resp.Body)
}
