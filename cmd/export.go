package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/export"
	"github.com/1cbyc/time-tracker/internal/report"
)

var (
	exportFormatFlag string
	exportOutFlag    string
	exportDateFlag   string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [day|week|month]",
	Short: "Export time entries as CSV or JSON",
	Long: `Export the time entries of a window as CSV or JSON, to stdout or a
file. The window defaults to the current day.

Examples:
  time-tracker export
  time-tracker export week --format json
  time-tracker export month --format csv --out july.csv`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		period := "day"
		if len(args) == 1 {
			period = args[0]
		}
		runExport(period)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormatFlag, "format", "f", "csv", "output format: csv or json")
	exportCmd.Flags().StringVarP(&exportOutFlag, "out", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVar(&exportDateFlag, "date", "", "anchor date for the window (YYYY-MM-DD, default today)")
}

func runExport(period string) {
	if exportFormatFlag != "csv" && exportFormatFlag != "json" {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown format %q\n", exportFormatFlag)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Supported formats are csv and json")
		deps.Exit(1)
		return
	}

	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	now := e.store.Now()
	anchor := now
	if exportDateFlag != "" {
		anchor, err = time.ParseInLocation("2006-01-02", exportDateFlag, e.cfg.Location())
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date %q\n", exportDateFlag)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use the format YYYY-MM-DD, e.g. 2026-07-01")
			deps.Exit(1)
			return
		}
	}

	start, end, err := reportWindow(period, anchor, e.cfg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	items := report.ItemsInRange(e.store.Tasks(), start, end, now)

	var w io.Writer = deps.Stdout
	if exportOutFlag != "" {
		f, err := os.Create(exportOutFlag)
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to create the output file")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if exportFormatFlag == "json" {
		err = export.WriteJSON(w, items, e.projects.Map(), now)
	} else {
		err = export.WriteCSV(w, items, e.projects.Map(), now)
	}
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write the export")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if exportOutFlag != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Exported %d entries to %s\n", len(items), exportOutFlag)
	}
}
