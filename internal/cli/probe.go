package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/setupd/internal/domain"
	"github.com/aalvaropc/setupd/internal/infra/httpclient"
	"github.com/aalvaropc/setupd/internal/infra/logger"
	"github.com/aalvaropc/setupd/internal/usecase"
)

func probeCmd(g *globalFlags) *cobra.Command {
	var target string
	var maxMS int
	var timeout time.Duration
	var format string

	c := &cobra.Command{
		Use:   "probe",
		Short: "Check that a running server answers GET / with the page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			cfg, cleanup, err := setupRuntime(cmd, g, &serveFlags{})
			if err != nil {
				return err
			}
			defer cleanup()

			if !cmd.Flags().Changed("url") {
				target = localURL(cfg.Server)
			}

			spec := domain.ProbeSpec{URL: target}
			if cmd.Flags().Changed("max-ms") {
				spec.MaxLatencyMS = &maxMS
			}

			exec := httpclient.NewExecutor(httpclient.WithTimeout(timeout))
			uc := usecase.NewProbePage(exec, usecase.WithLogger(logger.L()))

			res, err := uc.Execute(cmd.Context(), spec)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := printProbe(out, res, format); err != nil {
				return err
			}

			if res.Failed() {
				return &domain.OpError{
					Op:   "cli.probe",
					Kind: domain.KindProbe,
					Path: res.URL,
					Err:  domain.ErrProbeFailed,
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&target, "url", "u", "", "URL to probe (default: the configured listen address)")
	c.Flags().IntVar(&maxMS, "max-ms", 0, "Fail if the response takes longer than this many milliseconds")
	c.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

// localURL addresses the root route of a server running with cfg.
// Wildcard hosts are reached through localhost.
func localURL(cfg domain.ServerConfig) string {
	host := cfg.Host
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(cfg.Port)) + "/"
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printProbe(w io.Writer, res domain.ProbeResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"ok":    !res.Failed(),
			"probe": res,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyProbe(w, res)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyProbe(w io.Writer, res domain.ProbeResult) {
	th := newTheme(w)

	verdict := th.Pass.Render("OK")
	if res.Failed() {
		verdict = th.Fail.Render("FAIL")
	}

	fmt.Fprintf(w, "%s %s\n", th.Title.Render("Probe:"), res.URL)
	fmt.Fprintf(w, "Result:  %s\n", verdict)
	fmt.Fprintf(w, "Latency: %dms\n", res.LatencyMS)

	if res.Error != nil {
		fmt.Fprintf(w, "  error: %s (%s)\n", res.Error.Message, res.Error.Kind)
		return
	}

	fmt.Fprintf(w, "Status:  %d\n", res.StatusCode)
	pass, fail := countCheckPassFail(res.Checks)
	fmt.Fprintf(w, "  checks: %d pass / %d fail\n", pass, fail)
	for _, c := range res.Checks {
		mark := th.Pass.Render("✓")
		if !c.Passed {
			mark = th.Fail.Render("✗")
		}
		fmt.Fprintf(w, "    %s %s %s\n", mark, c.Name, th.Faint.Render("— "+c.Message))
	}
}

func countCheckPassFail(in []domain.CheckResult) (pass int, fail int) {
	for _, c := range in {
		if c.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}
