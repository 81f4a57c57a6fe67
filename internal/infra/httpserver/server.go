package httpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/aalvaropc/setupd/internal/domain"
)

// Server owns the listening socket and the http.Server serving the page.
type Server struct {
	cfg      domain.ServerConfig
	handler  http.Handler
	log      *slog.Logger
	announce io.Writer

	srv *http.Server
	ln  net.Listener
}

type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithAnnounce sets where the startup line is written.
func WithAnnounce(w io.Writer) Option {
	return func(s *Server) { s.announce = w }
}

func New(cfg domain.ServerConfig, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		handler:  NewResponder(),
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		announce: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.srv = &http.Server{
		Handler:           withRequestLog(s.handler, s.log),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}
	return s
}

// Listen binds the listening socket and, once bound, writes the startup
// line. A bind failure returns a KindBind error and writes nothing.
func (s *Server) Listen() error {
	if s.ln != nil {
		return errors.New("httpserver: already listening")
	}

	addr := s.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.log.Error("server.bind_failed", "addr", addr, "err", err)
		return &domain.OpError{
			Op:   "httpserver.listen",
			Kind: domain.KindBind,
			Path: addr,
			Err:  fmt.Errorf("%w: %w", domain.ErrBind, err),
		}
	}
	s.ln = ln

	s.log.Info("server.listening", "addr", ln.Addr().String())
	fmt.Fprintf(s.announce, "listening on %s\n", s.URL())
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// URL returns http://localhost:<port> for the bound port, falling back to
// the configured port before Listen.
func (s *Server) URL() string {
	port := s.cfg.Port
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	return fmt.Sprintf("http://localhost:%d", port)
}

// Serve accepts connections until ctx is done, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return errors.New("httpserver: Serve called before Listen")
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(s.ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("httpserver: serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("server.shutdown", "timeout", s.cfg.ShutdownTimeout.String())

	shutdownCtx := context.Background()
	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.cfg.ShutdownTimeout)
		defer cancel()
	}
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		_ = s.srv.Close()
		return fmt.Errorf("httpserver: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpserver: serve: %w", err)
	}
	return nil
}

// ListenAndServe binds and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}
