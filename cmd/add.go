package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/krfl/sidequest/internal/config"
	"github.com/krfl/sidequest/internal/model"
	"github.com/krfl/sidequest/internal/storage"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <message...>",
		Short: "Append a journal note timestamped now",
		Args:  cobra.MinimumNArgs(1),
		RunE:  appendEntry,
	}
}

// appendEntry runs the add pipeline: load, append, save. A failed save is a
// fatal store error, not a best-effort warning.
func appendEntry(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st := storage.New(cfg.StorePath)
	entries, err := st.Load()
	if err != nil {
		return err
	}

	entry := model.NewFromArgs(time.Now(), args)
	entries = append(entries, entry)

	if err := st.Save(entries); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added note at %s\n",
		entry.Timestamp.Local().Format("15:04:05"))
	return nil
}
