package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aalvaropc/setupd/internal/domain"
	"github.com/aalvaropc/setupd/internal/ports"
	"github.com/aalvaropc/setupd/internal/usecase/check"
)

type ProbePage struct {
	fetcher ports.PageFetcher
	log     *slog.Logger
}

type ProbeOption func(*ProbePage)

func WithLogger(l *slog.Logger) ProbeOption {
	return func(uc *ProbePage) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewProbePage(f ports.PageFetcher, opts ...ProbeOption) *ProbePage {
	uc := &ProbePage{
		fetcher: f,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute fetches spec.URL once and evaluates the page checks.
// Transport failures are reported on the result, not as an error; an error
// is returned only for an unusable spec.
func (uc *ProbePage) Execute(ctx context.Context, spec domain.ProbeSpec) (domain.ProbeResult, error) {
	target, err := normalizeURL(spec.URL)
	if err != nil {
		return domain.ProbeResult{}, &domain.OpError{
			Op:   "usecase.probe",
			Kind: domain.KindInvalidConfig,
			Path: spec.URL,
			Err:  err,
		}
	}

	res := domain.ProbeResult{URL: target, Checks: []domain.CheckResult{}}

	snap, err := uc.fetcher.Fetch(ctx, target)
	res.LatencyMS = snap.Latency.Milliseconds()
	if err != nil {
		res.Error = domain.NewProbeError(err)
		uc.log.Warn("probe.transport_error", "url", target, "kind", res.Error.Kind, "err", err)
		return res, nil
	}

	res.StatusCode = snap.StatusCode
	res.ContentType = snap.Header("Content-Type")
	res.Checks = check.Page(spec, snap)

	uc.log.Info("probe.done", "url", target, "status", res.StatusCode, "failed", res.Failed())
	return res, nil
}

func normalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("url is required")
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("url %q has no host", raw)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), nil
}
