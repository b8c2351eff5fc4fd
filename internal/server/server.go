package server

import (
	"fmt"
	"net"
	"net/http"

	"github.com/0xReLogic/simple-node/internal/config"
)

// Server binds the configured port and serves a single handler on it.
type Server struct {
	cfg config.ServerConfig
	srv *http.Server
}

// New creates a server for cfg. No timeouts are set; the net/http defaults apply.
func New(cfg config.ServerConfig, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:    cfg.Addr(),
			Handler: handler,
		},
	}
}

// Addr returns the address the server was configured with.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Listen reserves the configured TCP port.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind port %s: %w", s.cfg.Port, err)
	}
	return ln, nil
}

// Serve accepts connections on ln until it fails. It always returns a non-nil error.
func (s *Server) Serve(ln net.Listener) error {
	return fmt.Errorf("http server stopped: %w", s.srv.Serve(ln))
}

// ListenAndServe binds the port, calls onListening once the bind succeeded
// and then serves. onListening may be nil.
func (s *Server) ListenAndServe(onListening func(net.Addr)) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	if onListening != nil {
		onListening(ln.Addr())
	}
	return s.Serve(ln)
}

// Close stops the server and closes its listeners immediately.
func (s *Server) Close() error {
	return s.srv.Close()
}
