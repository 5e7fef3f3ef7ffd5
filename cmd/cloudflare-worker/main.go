//go:build js && wasm

package main

import (
	"fmt"
	"os"

	"serverless-fetch-go/internal/adapter/worker"
	"serverless-fetch-go/internal/client"
	"serverless-fetch-go/internal/config"
	"serverless-fetch-go/internal/logging"
	"serverless-fetch-go/internal/service"
)

func main() {
	cfg := config.Default()
	logger := logging.New(cfg)

	// On js/wasm the default transport issues requests through the
	// runtime's fetch API.
	c := client.NewUpstreamClientWithTransport(logger, nil, nil)
	svc, err := service.NewFetchService(c, cfg, logger, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	worker.Serve(svc, logger)
}
