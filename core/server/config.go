package server

import (
	"fmt"
	"strconv"
)

// Config holds configuration for the maintenance HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the API routes.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimit caps request bodies in bytes.
	BodyLimit int `mapstructure:"body_limit" default:"1048576"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Validate checks that Port is a usable TCP port.
func (c Config) Validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid server port %q", c.Port)
	}
	return nil
}
