package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matheuscscp/oauth2-device-bridge/internal/code"
	"github.com/matheuscscp/oauth2-device-bridge/internal/config"
	"github.com/matheuscscp/oauth2-device-bridge/internal/provider"
	"github.com/matheuscscp/oauth2-device-bridge/internal/store"
)

// New wires the session store, code generator and API together. The
// store is returned as well so the caller can run the eviction sweeper
// alongside the server.
func New(conf *config.Config, p provider.Interface) (*http.Server, store.Store) {
	st := store.NewMemoryStore(conf.Device.TTL())
	gen := code.NewGenerator(conf.Device.CodeLength)
	api := newAPI(p, conf, st, gen)
	return newServer(conf, api, st, prometheus.DefaultRegisterer, prometheus.DefaultGatherer), st
}
