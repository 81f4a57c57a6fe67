package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	debug      bool
	configPath string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	sf := &serveFlags{}

	cmd := &cobra.Command{
		Use:          "setupd",
		Short:        "Serve the Project Set-up page on GET /",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, g, sf)
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .setupd/logs/setupd.log")
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to setupd.yaml (default: ./setupd.yaml if present)")
	sf.register(cmd)

	cmd.AddCommand(serveCmd(g))
	cmd.AddCommand(probeCmd(g))
	cmd.AddCommand(versionCmd())
	return cmd
}
