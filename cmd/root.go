package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/krfl/sidequest/internal/filter"
	"github.com/krfl/sidequest/internal/storage"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sidequest [message...]",
		Short: "sidequest – a tiny journal for the terminal",
		Long: `sidequest keeps short timestamped notes in a single JSON file under
your user config directory. Add notes as free text, list them by date range,
or collapse them into one merged digest line per day.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare free text appends a note, same as `sidequest add`.
			if len(args) == 0 {
				return cmd.Help()
			}
			return appendEntry(cmd, args)
		},
	}

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newSummaryCmd(),
		newExportCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// exitCode maps an error to the process exit status: 2 for store failures,
// 3 for unparseable dates, 4 for ambiguous local times, 1 otherwise.
func exitCode(err error) int {
	var storeErr *storage.StoreError
	var parseErr *filter.ParseError
	var ambiguousErr *filter.AmbiguousTimeError
	switch {
	case errors.As(err, &ambiguousErr):
		return 4
	case errors.As(err, &parseErr):
		return 3
	case errors.As(err, &storeErr):
		return 2
	default:
		return 1
	}
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
