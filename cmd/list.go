package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/krfl/sidequest/internal/config"
	"github.com/krfl/sidequest/internal/filter"
	"github.com/krfl/sidequest/internal/model"
	"github.com/krfl/sidequest/internal/storage"
)

func newListCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal notes, optionally bounded by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, from, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", `Lower bound, "YYYY-MM-DD HH:MM" or "YYYY-MM-DD" (inclusive)`)
	cmd.Flags().StringVar(&to, "to", "", "Upper bound, same formats (inclusive)")
	return cmd
}

func runList(cmd *cobra.Command, from, to string) error {
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

	printList(cmd.OutOrStdout(), rng.Apply(entries))
	return nil
}

// printList prints entries in store order, never re-sorted.
func printList(w io.Writer, entries []model.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s: %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05 -07:00"), e.Message)
	}
}
