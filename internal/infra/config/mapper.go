package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/setupd/internal/domain"
)

// Apply layers the parsed YAML values on top of cfg.
func Apply(path string, cfg domain.Config, y YAMLConfig) (domain.Config, error) {
	s := y.Setupd.Server

	if s.Host != nil {
		cfg.Server.Host = strings.TrimSpace(*s.Host)
	}
	if s.Port != nil {
		if err := ValidatePort(*s.Port); err != nil {
			return cfg, invalidField(path, "server.port", err.Error())
		}
		cfg.Server.Port = *s.Port
	}

	durations := []struct {
		field string
		raw   string
		dst   *time.Duration
	}{
		{"server.read_header_timeout", s.ReadHeaderTimeout, &cfg.Server.ReadHeaderTimeout},
		{"server.idle_timeout", s.IdleTimeout, &cfg.Server.IdleTimeout},
		{"server.shutdown_timeout", s.ShutdownTimeout, &cfg.Server.ShutdownTimeout},
	}
	for _, d := range durations {
		if strings.TrimSpace(d.raw) == "" {
			continue
		}
		v, err := parseDuration(d.raw)
		if err != nil {
			return cfg, invalidField(path, d.field, err.Error())
		}
		*d.dst = v
	}

	if y.Setupd.Log.Debug != nil {
		cfg.Log.Debug = *y.Setupd.Log.Debug
	}

	return cfg, nil
}

// ValidatePort rejects ports outside the TCP range.
func ValidatePort(p int) error {
	if p < 1 || p > 65535 {
		return fmt.Errorf("port %d out of range 1..65535", p)
	}
	return nil
}

func parseDuration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return d, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
