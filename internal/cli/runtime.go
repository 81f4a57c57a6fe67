package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/setupd/internal/domain"
	"github.com/aalvaropc/setupd/internal/infra/config"
	"github.com/aalvaropc/setupd/internal/infra/logger"
)

// setupRuntime resolves the config root, layers config and flags, and
// installs the file logger. The returned cleanup is never nil.
func setupRuntime(cmd *cobra.Command, g *globalFlags, sf *serveFlags) (domain.Config, func(), error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	root := config.ResolveRoot(wd)

	cfg, err := resolveConfig(cmd, g, sf, root)
	if err != nil {
		return cfg, func() {}, err
	}

	cleanup, setupErr := logger.Setup(logger.Config{
		Root:  root,
		Debug: cfg.Log.Debug,
	})
	if err := logger.IsReady(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: file logging disabled: %v\n", setupErr)
		return cfg, func() {}, nil
	}

	logger.L().Info("cli.start", "command", cmd.Name(), "root", root, "log_path", logger.Path())
	return cfg, func() { _ = cleanup() }, nil
}
