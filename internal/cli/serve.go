package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/setupd/internal/domain"
	"github.com/aalvaropc/setupd/internal/infra/config"
	"github.com/aalvaropc/setupd/internal/infra/httpserver"
	"github.com/aalvaropc/setupd/internal/infra/logger"
)

type serveFlags struct {
	host string
	port int
}

func (sf *serveFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&sf.host, "host", "", "Listen host (default: all interfaces)")
	c.Flags().IntVarP(&sf.port, "port", "p", domain.DefaultPort, "Listen port")
}

func serveCmd(g *globalFlags) *cobra.Command {
	sf := &serveFlags{}

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page on GET / until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, g, sf)
		},
	}

	sf.register(c)
	return c
}

func runServe(cmd *cobra.Command, g *globalFlags, sf *serveFlags) error {
	cfg, cleanup, err := setupRuntime(cmd, g, sf)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(cfg.Server,
		httpserver.WithLogger(logger.L()),
		httpserver.WithAnnounce(cmd.OutOrStdout()),
	)
	err = srv.ListenAndServe(ctx)
	if !logger.InitTime().IsZero() {
		logger.L().Info("cli.serve.stopped", "uptime", time.Since(logger.InitTime()).String())
	}
	return err
}

// resolveConfig layers defaults, setupd.yaml and explicit flags, in that
// order. Without --config, setupd.yaml is read from root.
func resolveConfig(cmd *cobra.Command, g *globalFlags, sf *serveFlags, root string) (domain.Config, error) {
	var (
		cfg domain.Config
		err error
	)
	if p := strings.TrimSpace(g.configPath); p != "" {
		if abs, aerr := filepath.Abs(p); aerr == nil {
			p = abs
		}
		cfg, err = config.LoadFile(p, true)
	} else {
		cfg, err = config.Load(root)
	}
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("host") {
		cfg.Server.Host = strings.TrimSpace(sf.host)
	}
	if cmd.Flags().Changed("port") {
		if err := config.ValidatePort(sf.port); err != nil {
			return cfg, &domain.OpError{
				Op:   "cli.flags",
				Kind: domain.KindInvalidConfig,
				Err:  err,
			}
		}
		cfg.Server.Port = sf.port
	}
	if g.debug {
		cfg.Log.Debug = true
	}
	return cfg, nil
}
