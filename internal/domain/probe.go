package domain

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"
)

// ProbeErrorKind is a high-level classification of transport errors seen
// while probing a running server.
type ProbeErrorKind string

const (
	ProbeErrorUnknown ProbeErrorKind = "unknown"
	ProbeErrorTimeout ProbeErrorKind = "timeout"
	ProbeErrorDNS     ProbeErrorKind = "dns"
	ProbeErrorConn    ProbeErrorKind = "connection"
)

// ProbeError represents a structured transport error.
type ProbeError struct {
	Kind    ProbeErrorKind `json:"kind"`
	Message string         `json:"message"`
}

// CheckResult is the output of a single check against a probe response.
type CheckResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// ResponseSnapshot stores a bounded view of a fetched response.
// It stays generic so the domain does not depend on net/http types.
type ResponseSnapshot struct {
	StatusCode int
	Headers    map[string][]string
	Body       []byte
	Truncated  bool
	Latency    time.Duration
}

// Header returns the first value for key, matched case-insensitively.
func (r ResponseSnapshot) Header(key string) string {
	for k, v := range r.Headers {
		if len(v) > 0 && strings.EqualFold(k, key) {
			return v[0]
		}
	}
	return ""
}

// ProbeSpec describes what a probe requests and expects.
type ProbeSpec struct {
	URL          string
	MaxLatencyMS *int
}

// ProbeResult is the outcome of probing a server once.
type ProbeResult struct {
	URL         string        `json:"url"`
	StatusCode  int           `json:"status"`
	ContentType string        `json:"content_type,omitempty"`
	LatencyMS   int64         `json:"latency_ms"`
	Checks      []CheckResult `json:"checks"`
	Error       *ProbeError   `json:"error,omitempty"`
}

// Failed reports whether the probe hit a transport error or any check failed.
func (r ProbeResult) Failed() bool {
	if r.Error != nil {
		return true
	}
	for _, c := range r.Checks {
		if !c.Passed {
			return true
		}
	}
	return false
}

// NewProbeError converts a transport error into a ProbeError.
func NewProbeError(err error) *ProbeError {
	if err == nil {
		return nil
	}
	return &ProbeError{Kind: ClassifyProbeError(err), Message: err.Error()}
}

// ClassifyProbeError maps transport errors onto a ProbeErrorKind.
func ClassifyProbeError(err error) ProbeErrorKind {
	if err == nil {
		return ProbeErrorUnknown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ProbeErrorTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ProbeErrorDNS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ProbeErrorTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ProbeErrorConn
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return ProbeErrorTimeout
	}
	return ProbeErrorUnknown
}
