package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/samvad-status-probe/internal/app"
	"github.com/samvad-hq/samvad-status-probe/internal/logger"
	"github.com/samvad-hq/samvad-status-probe/internal/render"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the most recent journaled reports",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Close()

		store, err := app.OpenJournal(cfg, log)
		if err != nil {
			return err
		}
		defer store.Close()

		reports, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		if verbose {
			return printReports(os.Stdout, reports)
		}
		return render.Table(os.Stdout, reports)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of reports to list")
}
