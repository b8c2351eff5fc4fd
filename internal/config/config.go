package config

import (
	"errors"
	"fmt"
	"os"
)

const (
	// EnvPort names the environment variable holding the listening port.
	EnvPort = "PORT"
	// DefaultPort is used when EnvPort is unset or empty.
	DefaultPort = "3000"
)

// ErrNilLookup is returned by LoadFromLookup when no lookup func is given.
var ErrNilLookup = errors.New("nil environment lookup")

// Config represents the main configuration structure for simple-node
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	// Port is kept exactly as supplied. It is not checked to be numeric.
	Port string
}

// LoggingConfig controls the process logger. It is not read from the
// environment; the zero value gives plain message-only output at info level.
type LoggingConfig struct {
	Level  string
	Format string
}

// Addr returns the listen address for the configured port on all interfaces.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return LoadFromLookup(os.LookupEnv)
}

// LoadFromLookup builds the configuration using lookup to resolve
// environment variables.
func LoadFromLookup(lookup func(string) (string, bool)) (*Config, error) {
	if lookup == nil {
		return nil, fmt.Errorf("error reading environment: %w", ErrNilLookup)
	}

	port, ok := lookup(EnvPort)
	if !ok || port == "" {
		port = DefaultPort
	}

	return &Config{
		Server: ServerConfig{Port: port},
	}, nil
}
