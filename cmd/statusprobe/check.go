package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/samvad-status-probe/internal/app"
	"github.com/samvad-hq/samvad-status-probe/internal/logger"
	"github.com/samvad-hq/samvad-status-probe/internal/probe"
)

var checkCmd = &cobra.Command{
	Use:   "check <status-code|probe-id>...",
	Short: "Probe /status/<code> or named catalog entries once",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return check(cmd.Context(), args)
	},
}

func check(ctx context.Context, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Close()

	prober, err := app.NewProber(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer prober.Close()

	probes, err := resolveProbes(prober.Probes(), args)
	if err != nil {
		return err
	}

	reports, err := prober.Check(ctx, probes)
	if len(reports) > 0 {
		if rerr := printReports(os.Stdout, reports); rerr != nil {
			return rerr
		}
	}
	return err
}

// resolveProbes maps numeric args to ad-hoc status probes and the rest to
// catalog entries.
func resolveProbes(catalog []probe.Probe, args []string) ([]probe.Probe, error) {
	byID := make(map[string]probe.Probe, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	out := make([]probe.Probe, 0, len(args))
	for _, arg := range args {
		if code, err := strconv.Atoi(arg); err == nil {
			if code < 100 || code > 999 {
				return nil, fmt.Errorf("status code %d out of range", code)
			}
			out = append(out, probe.StatusProbe(code))
			continue
		}
		p, ok := byID[arg]
		if !ok {
			return nil, fmt.Errorf("unknown probe %q", arg)
		}
		out = append(out, p)
	}
	return out, nil
}
