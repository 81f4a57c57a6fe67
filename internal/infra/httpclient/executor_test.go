package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestExecutorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exec := NewExecutor(WithTimeout(20 * time.Millisecond))

	resp, err := exec.Get(context.Background(), server.URL)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if resp.Duration <= 0 {
		t.Fatalf("expected duration to be set")
	}
}

func TestExecutorCapturesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<h1>hi</h1>"))
	}))
	defer server.Close()

	resp, err := NewExecutor().Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Status)
	}
	if string(resp.BodyBytes) != "<h1>hi</h1>" {
		t.Fatalf("unexpected body %q", resp.BodyBytes)
	}
	if resp.Headers.Get("Content-Type") != "text/html; charset=utf-8" {
		t.Fatalf("expected header to be cloned")
	}
	if resp.Truncated {
		t.Fatalf("did not expect truncation")
	}
}

func TestExecutorTruncatesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("a", 2048)))
	}))
	defer server.Close()

	resp, err := NewExecutor(WithMaxBodyBytes(1024)).Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Truncated {
		t.Fatalf("expected truncated=true")
	}
	if len(resp.BodyBytes) != 1024 {
		t.Fatalf("expected 1024 bytes, got %d", len(resp.BodyBytes))
	}
}

func TestExecutorDoesNotFollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	resp, err := NewExecutor().Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != http.StatusFound {
		t.Fatalf("expected 302 to surface, got %d", resp.Status)
	}
}

func TestExecutorInvalidURL(t *testing.T) {
	if _, err := NewExecutor().Get(context.Background(), "://bad"); err == nil {
		t.Fatalf("expected error for invalid URL")
	}
}

func TestExecutorFetchSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Test", "1")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short"))
	}))
	defer server.Close()

	snap, err := NewExecutor().Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.StatusCode != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", snap.StatusCode)
	}
	if snap.Header("x-test") != "1" {
		t.Fatalf("expected X-Test header in snapshot")
	}
	if string(snap.Body) != "short" {
		t.Fatalf("unexpected body %q", snap.Body)
	}
	if snap.Latency <= 0 {
		t.Fatalf("expected latency to be recorded")
	}
}

func TestExecutorWithClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("via injected client"))
	}))
	defer server.Close()

	exec := NewExecutor(WithClient(server.Client()))
	if exec.client != server.Client() {
		t.Fatalf("expected injected client to be used")
	}

	resp, err := exec.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.BodyBytes) != "via injected client" {
		t.Fatalf("unexpected body %q", resp.BodyBytes)
	}
}
