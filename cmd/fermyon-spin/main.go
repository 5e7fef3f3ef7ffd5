//go:build wasip1

package main

import (
	spinhttp "github.com/fermyon/spin/sdk/go/v2/http"

	"serverless-fetch-go/internal/adapter/httpadapter"
	"serverless-fetch-go/internal/client"
	"serverless-fetch-go/internal/config"
	"serverless-fetch-go/internal/logging"
	"serverless-fetch-go/internal/service"
)

func init() {
	cfg := config.Default()
	logger := logging.New(cfg)

	// Outbound requests must go through the host; the target's host has to
	// be listed in allowed_outbound_hosts in spin.toml.
	c := client.NewUpstreamClientWithTransport(logger, nil, spinhttp.NewTransport())
	svc, err := service.NewFetchService(c, cfg, logger, nil)
	if err != nil {
		panic("fetch service: " + err.Error())
	}

	spinhttp.Handle(httpadapter.Handler(svc, logger))
}

// main is required by the wasip1 target but never runs; Spin calls the
// handler registered in init.
func main() {}
