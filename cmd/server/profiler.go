package main

import (
	"net/http"
	_ "net/http/pprof"

	_ "github.com/grafana/pyroscope-go/godeltaprof/http/pprof"
	"pokedex.dev/pokedex-api/app/utils/logger"
)

// startProfiler serves the standard and delta pprof endpoints on their own
// listener so they are never reachable through the public API port.
func startProfiler(addr string) {
	if addr == "" {
		return
	}
	go func() {
		logger.GetLogger().Infof("pprof listening on %s", addr)
		if err := http.ListenAndServe(addr, http.DefaultServeMux); err != nil {
			logger.GetLogger().Errorf("pprof listener stopped: %v", err)
		}
	}()
}
