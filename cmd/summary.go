package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/krfl/sidequest/internal/config"
	"github.com/krfl/sidequest/internal/filter"
	"github.com/krfl/sidequest/internal/storage"
	"github.com/krfl/sidequest/internal/summary"
)

func newSummaryCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print one merged digest line per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if to != "" && from == "" {
				return errors.New("--to requires --from")
			}
			return runSummary(cmd, from, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", `Lower bound, "YYYY-MM-DD HH:MM" or "YYYY-MM-DD" (inclusive)`)
	cmd.Flags().StringVar(&to, "to", "", "Upper bound, same formats (inclusive, requires --from)")
	return cmd
}

func runSummary(cmd *cobra.Command, from, to string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	entries, err := storage.New(cfg.StorePath).Load()
	if err != nil {
		return err
	}

	rng, err := filter.ParseRange(from, to, time.Local)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), summary.Aggregate(rng.Apply(entries)))
	return nil
}

// printSummary labels each digest with its day instant rendered in local time.
func printSummary(w io.Writer, days []summary.DailySummary) {
	for _, d := range days {
		fmt.Fprintf(w, "%s: %s\n", d.Day.Local().Format("2006-01-02"), d.Message)
	}
}
