package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/krfl/sidequest/internal/config"
	"github.com/krfl/sidequest/internal/filter"
	"github.com/krfl/sidequest/internal/model"
	"github.com/krfl/sidequest/internal/storage"
)

func newExportCmd() *cobra.Command {
	var format, from, to string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export journal notes to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if to != "" && from == "" {
				return errors.New("--to requires --from")
			}
			return runExport(cmd, format, from, to)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Output format: json, csv, toml, md (default from config)")
	cmd.Flags().StringVar(&from, "from", "", `Lower bound, "YYYY-MM-DD HH:MM" or "YYYY-MM-DD" (inclusive)`)
	cmd.Flags().StringVar(&to, "to", "", "Upper bound, same formats (inclusive, requires --from)")
	return cmd
}

func runExport(cmd *cobra.Command, format, from, to string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.ExportFormat
	}

	entries, err := storage.New(cfg.StorePath).Load()
	if err != nil {
		return err
	}

	rng, err := filter.ParseRange(from, to, time.Local)
	if err != nil {
		return err
	}
	entries = rng.Apply(entries)
	if entries == nil {
		entries = []model.Entry{}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "csv":
		printCSV(out, entries)
	case "toml":
		return printTOML(out, entries)
	case "md":
		printMarkdown(out, entries)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	return nil
}

func printCSV(w io.Writer, entries []model.Entry) {
	fmt.Fprintln(w, "timestamp,message")
	for _, e := range entries {
		fmt.Fprintf(w, "%s,%s\n",
			e.Timestamp.Local().Format(time.RFC3339), csvEscape(e.Message))
	}
}

// exportFile is the TOML export document: [[entries]] tables with
// human-readable timestamps.
type exportFile struct {
	Entries []exportEntry `toml:"entries"`
}

type exportEntry struct {
	Timestamp string `toml:"timestamp"`
	Message   string `toml:"message"`
}

func printTOML(w io.Writer, entries []model.Entry) error {
	file := exportFile{Entries: make([]exportEntry, 0, len(entries))}
	for _, e := range entries {
		file.Entries = append(file.Entries, exportEntry{
			Timestamp: e.Timestamp.Local().Format(time.RFC3339),
			Message:   e.Message,
		})
	}
	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	fmt.Fprint(w, string(data))
	return nil
}

// printMarkdown groups entries under a heading per local date.
func printMarkdown(w io.Writer, entries []model.Entry) {
	var currentDay string
	for _, e := range entries {
		local := e.Timestamp.Local()
		day := local.Format("2006-01-02")
		if day != currentDay {
			fmt.Fprintf(w, "## %s\n", day)
			currentDay = day
		}
		fmt.Fprintf(w, "- %s  %s\n", local.Format("15:04"), e.Message)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
