package config

import (
	"strings"
	"testing"

	"github.com/aalvaropc/setupd/internal/domain"
)

func TestApplyBadDuration(t *testing.T) {
	var y YAMLConfig
	y.Setupd.Server.IdleTimeout = "soon"

	_, err := Apply("setupd.yaml", domain.DefaultConfig(), y)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "server.idle_timeout") {
		t.Fatalf("expected field in error, got %v", err)
	}
}

func TestApplyNegativeDuration(t *testing.T) {
	var y YAMLConfig
	y.Setupd.Server.ShutdownTimeout = "-1s"

	_, err := Apply("setupd.yaml", domain.DefaultConfig(), y)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestApplyEmptyHostOverride(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Server.Host = "0.0.0.0"

	empty := "  "
	var y YAMLConfig
	y.Setupd.Server.Host = &empty

	got, err := Apply("setupd.yaml", cfg, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Server.Host != "" {
		t.Fatalf("expected host cleared, got %q", got.Server.Host)
	}
}

func TestValidatePort(t *testing.T) {
	cases := []struct {
		port int
		ok   bool
	}{
		{0, false},
		{1, true},
		{3333, true},
		{65535, true},
		{65536, false},
		{-1, false},
	}
	for _, c := range cases {
		err := ValidatePort(c.port)
		if (err == nil) != c.ok {
			t.Errorf("ValidatePort(%d) err=%v, want ok=%v", c.port, err, c.ok)
		}
	}
}
