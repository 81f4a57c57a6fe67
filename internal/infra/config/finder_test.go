package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/setupd/internal/domain"
)

func TestFindRoot_FromNestedDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "site")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("setupd:\n  server:\n    port: 4000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}

	cfg, err := Load(got)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Fatalf("expected port from found config, got %d", cfg.Server.Port)
	}
}

func TestFindRoot_FromFilePath(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(root, "index.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(file)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	_ = os.MkdirAll(dir, 0o755)

	_, err := FindRoot(dir)
	if err == nil {
		t.Skip("a setupd.yaml exists above the temp dir")
	}
	if !domain.IsKind(err, domain.KindNotFound) || !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if got := ResolveRoot(dir); got != dir {
		t.Fatalf("expected fallback to start dir, got %s", got)
	}
}

func TestFindRoot_Empty(t *testing.T) {
	if _, err := FindRoot(""); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
