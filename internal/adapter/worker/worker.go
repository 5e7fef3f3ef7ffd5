//go:build js && wasm

package worker

import (
	"context"
	"fmt"
	"log/slog"
	"syscall/js"

	"serverless-fetch-go/internal/service"
)

// Serve exports h as the global ExportName function and blocks forever,
// keeping the Go runtime alive for subsequent fetch events.
func Serve(h service.Handler, logger *slog.Logger) {
	logger = logger.With("component", "worker")

	js.Global().Set(ExportName, js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fetch(h, logger, args)
	}))
	logger.Info("worker ready", "export", ExportName)

	select {}
}

// fetch returns a Promise that resolves with a Response or rejects with the
// opaque error message, which the worker runtime turns into its error page.
func fetch(h service.Handler, logger *slog.Logger, args []js.Value) any {
	promise := js.Global().Get("Promise")
	if len(args) < 3 {
		return promise.Call("reject", js.Global().Get("Error").New("expected 3 arguments: request, env, ctx"))
	}
	request := args[0]

	// The executor runs synchronously inside the Promise constructor.
	executor := js.FuncOf(func(_ js.Value, p []js.Value) any {
		resolve, reject := p[0], p[1]

		// Blocking on the outbound fetch from the JS event loop would
		// deadlock; the goroutine yields back to it.
		go func() {
			defer func() {
				if r := recover(); r != nil {
					reject.Invoke(js.Global().Get("Error").New(fmt.Sprintf("panic: %v", r)))
				}
			}()

			req := newRequest(request.Get("method").String(), request.Get("url").String())
			resp, err := h.Handle(context.Background(), req)
			if err != nil {
				logger.Error("fetch failed", "err", err, "detail", service.Detail(err))
				reject.Invoke(js.Global().Get("Error").New(err.Error()))
				return
			}

			status, headers := responseInit(resp)
			init := js.Global().Get("Object").New()
			init.Set("status", status)
			init.Set("headers", js.ValueOf(headers))
			resolve.Invoke(js.Global().Get("Response").New(resp.Body, init))
		}()
		return nil
	})
	defer executor.Release()

	return promise.New(executor)
}
