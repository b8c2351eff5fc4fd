package main

import (
	"net"

	"github.com/rs/zerolog"

	"github.com/0xReLogic/simple-node/internal/config"
	"github.com/0xReLogic/simple-node/internal/logging"
	"github.com/0xReLogic/simple-node/internal/responder"
	"github.com/0xReLogic/simple-node/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := logging.Errors()
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging)

	srv := server.New(cfg.Server, responder.New())
	if err := run(srv, cfg.Server.Port, logging.L(), nil); err != nil {
		logger := logging.Errors()
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

// run binds srv, announces the port on logger and serves until srv fails.
// bound, when set, is called with the listener address after the announcement.
func run(srv *server.Server, port string, logger zerolog.Logger, bound func(net.Addr)) error {
	return srv.ListenAndServe(func(addr net.Addr) {
		logger.Info().Msgf("Server running on port %s", port)
		if bound != nil {
			bound(addr)
		}
	})
}
