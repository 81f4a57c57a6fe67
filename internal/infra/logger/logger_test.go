package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSetupWritesJSONLog(t *testing.T) {
	root := t.TempDir()
	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger, got %v", err)
	}
	want := filepath.Join(root, ".setupd", "logs", "setupd.log")
	if Path() != want {
		t.Fatalf("expected path %q, got %q", want, Path())
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time to be set")
	}

	L().Info("server.listening", "addr", ":3333")
	L().Debug("server.request", "path", "/")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "server.listening") {
		t.Fatalf("expected info record, got:\n%s", out)
	}
	if strings.Contains(out, "server.request") {
		t.Fatalf("debug record should be filtered without --debug, got:\n%s", out)
	}
}

func TestNewHandlerUTCTimestamps(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, true))
	l.Debug("probe")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	ts, ok := rec["time"].(string)
	if !ok {
		t.Fatalf("expected string time, got %v", rec["time"])
	}
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		t.Fatalf("time not RFC3339Nano: %v", err)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %s", ts)
	}
	if _, ok := rec["source"]; !ok {
		t.Fatalf("expected source attr in debug mode")
	}
}

func TestSetupFailsOnUnwritableRoot(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, ".setupd")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cleanup, err := Setup(Config{Root: root})
	if err == nil {
		_ = cleanup()
		t.Fatalf("expected error when .setupd is a file")
	}
	if IsReady() == nil {
		t.Fatalf("expected discard logger after failed setup")
	}
}
