package domain

import (
	"net"
	"strconv"
	"time"
)

// DefaultPort is the port the page is served on when nothing overrides it.
const DefaultPort = 3333

// Config represents the setupd configuration loaded from setupd.yaml.
type Config struct {
	Server ServerConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int

	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

type LogConfig struct {
	Debug bool
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DefaultConfig provides sane defaults if setupd.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              DefaultPort,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
	}
}
