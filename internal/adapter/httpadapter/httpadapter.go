// Package httpadapter serves the fetch core through a plain net/http handler,
// the entry shape of WebAssembly HTTP component runtimes.
package httpadapter

import (
	"io"
	"log/slog"
	"net/http"

	"serverless-fetch-go/internal/model"
	"serverless-fetch-go/internal/service"
)

// Handler returns an http.HandlerFunc running h. A failure is answered the
// way the component runtime answers a handler error: status 500 with the
// opaque message and no further detail.
func Handler(h service.Handler, logger *slog.Logger) http.HandlerFunc {
	logger = logger.With("component", "http_adapter")

	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.Handle(r.Context(), model.RequestFromHTTP(r))
		if err != nil {
			logger.Error("handler failed", "err", err, "detail", service.Detail(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		for key, vals := range resp.Header {
			for _, v := range vals {
				w.Header().Add(key, v)
			}
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := io.WriteString(w, resp.Body); err != nil {
			logger.Error("writing response body", "err", err)
		}
	}
}
