package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/samvad-status-probe/internal/app"
	"github.com/samvad-hq/samvad-status-probe/internal/config"
	"github.com/samvad-hq/samvad-status-probe/internal/domain"
	"github.com/samvad-hq/samvad-status-probe/internal/logger"
	"github.com/samvad-hq/samvad-status-probe/internal/render"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "statusprobe",
	Short:         "Probe HTTP endpoints and classify their failures",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the probe catalog once, or on probe_interval_seconds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print request/response panes for every report")
	rootCmd.AddCommand(runCmd, checkCmd, historyCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "statusprobe failed: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads config and installs the process logger.
func bootstrap() (*config.Config, *logger.ZapLogger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

func run(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.InfoObj("statusprobe starting", "config", cfg)

	prober, err := app.NewProber(ctx, cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize prober", "error", err)
		return err
	}
	defer func() {
		if err := prober.Close(); err != nil {
			logger.ErrorObj("prober close failed", "error", err)
		}
	}()

	reports, err := prober.Run(ctx)
	if len(reports) > 0 {
		if rerr := printReports(os.Stdout, reports); rerr != nil {
			return rerr
		}
	}
	if err != nil {
		return fmt.Errorf("prober run: %w", err)
	}
	return nil
}

// printReports writes a summary table followed by the panes of every failure
// (or every report with --verbose).
func printReports(w io.Writer, reports []domain.Report) error {
	if err := render.Table(w, reports); err != nil {
		return err
	}
	for _, r := range reports {
		if !verbose && !r.Failed() {
			continue
		}
		fmt.Fprintln(w)
		if err := render.Text(w, r); err != nil {
			return err
		}
	}
	return nil
}
