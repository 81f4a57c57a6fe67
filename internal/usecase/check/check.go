package check

import (
	"fmt"
	"mime"
	"strings"

	"github.com/aalvaropc/setupd/internal/domain"
)

func Status(expected int, got int) domain.CheckResult {
	if got == expected {
		return domain.CheckResult{
			Name:    "status",
			Passed:  true,
			Message: fmt.Sprintf("status %d", got),
		}
	}

	return domain.CheckResult{
		Name:    "status",
		Passed:  false,
		Message: fmt.Sprintf("expected status %d, got %d", expected, got),
	}
}

// ContentType passes when the media type of got equals expected, ignoring
// parameters such as charset.
func ContentType(expected string, got string) domain.CheckResult {
	want, _, _ := mime.ParseMediaType(expected)
	have, _, err := mime.ParseMediaType(got)
	if err == nil && strings.EqualFold(want, have) {
		return domain.CheckResult{
			Name:    "content_type",
			Passed:  true,
			Message: fmt.Sprintf("content type %s", got),
		}
	}

	if got == "" {
		got = "<none>"
	}
	return domain.CheckResult{
		Name:    "content_type",
		Passed:  false,
		Message: fmt.Sprintf("expected content type %s, got %s", want, got),
	}
}

// Body passes when got is byte-identical to expected.
func Body(expected []byte, got []byte, truncated bool) domain.CheckResult {
	if !truncated && string(expected) == string(got) {
		return domain.CheckResult{
			Name:    "body",
			Passed:  true,
			Message: fmt.Sprintf("body matches (%d bytes)", len(got)),
		}
	}

	msg := fmt.Sprintf("expected %d-byte page, got %d bytes", len(expected), len(got))
	if truncated {
		msg += " (truncated)"
	} else if i := firstDiff(expected, got); i >= 0 && len(expected) == len(got) {
		msg = fmt.Sprintf("body differs at byte %d", i)
	}
	return domain.CheckResult{
		Name:    "body",
		Passed:  false,
		Message: msg,
	}
}

func MaxLatency(maxMs int, latencyMs int64) domain.CheckResult {
	if latencyMs <= int64(maxMs) {
		return domain.CheckResult{
			Name:    "max_ms",
			Passed:  true,
			Message: fmt.Sprintf("latency %dms <= %dms", latencyMs, maxMs),
		}
	}

	return domain.CheckResult{
		Name:    "max_ms",
		Passed:  false,
		Message: fmt.Sprintf("expected latency <= %dms, got %dms", maxMs, latencyMs),
	}
}

// Page runs every check a healthy page response must satisfy.
func Page(spec domain.ProbeSpec, resp domain.ResponseSnapshot) []domain.CheckResult {
	out := []domain.CheckResult{
		Status(200, resp.StatusCode),
		ContentType(domain.PageContentType, resp.Header("Content-Type")),
		Body([]byte(domain.PageHTML), resp.Body, resp.Truncated),
	}
	if spec.MaxLatencyMS != nil {
		out = append(out, MaxLatency(*spec.MaxLatencyMS, resp.Latency.Milliseconds()))
	}
	return out
}

func firstDiff(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
