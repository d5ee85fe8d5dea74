package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/cli"
	"github.com/1cbyc/time-tracker/internal/config"
	"github.com/1cbyc/time-tracker/internal/report"
	"github.com/1cbyc/time-tracker/internal/timeutil"
)

var reportDateFlag string

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [day|week|month]",
	Short: "Aggregated totals for a window",
	Long: `Print per-task and per-project totals for a day, week, or month.
The window defaults to the current day; --date moves it.

A range spanning midnight is attributed to each day only for the part
inside that day, so day totals never double-count.

Examples:
  time-tracker report
  time-tracker report week
  time-tracker report month --date 2026-07-01`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		period := "day"
		if len(args) == 1 {
			period = args[0]
		}
		runReport(period)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportDateFlag, "date", "", "anchor date for the window (YYYY-MM-DD, default today)")
}

// reportWindow resolves the named period to a half-open window.
func reportWindow(period string, anchor time.Time, cfg config.Config) (start, end time.Time, err error) {
	switch period {
	case "day", "":
		start, end = timeutil.DayWindow(anchor)
	case "week":
		start, end = timeutil.WeekWindow(anchor, cfg.WeekStart())
	case "month":
		start, end = timeutil.MonthWindow(anchor)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q (expected day, week, or month)", period)
	}
	return start, end, nil
}

func runReport(period string) {
	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	now := e.store.Now()
	anchor := now
	if reportDateFlag != "" {
		anchor, err = time.ParseInLocation("2006-01-02", reportDateFlag, e.cfg.Location())
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date %q\n", reportDateFlag)
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

	tasks := e.store.TasksInRange(start, end)
	taskTotals := report.TaskTotals(tasks, start, end, now)
	if len(taskTotals) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No tracked time between %s and %s\n",
			start.Format("Jan 2"), end.AddDate(0, 0, -1).Format("Jan 2, 2006"))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Report %s - %s\n",
		start.Format("Mon Jan 2"), end.AddDate(0, 0, -1).Format("Mon Jan 2, 2006"))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	var grand time.Duration
	_, _ = fmt.Fprintln(deps.Stdout, "By task:")
	for _, tt := range taskTotals {
		grand += tt.Total
		_, _ = fmt.Fprintf(deps.Stdout, "  %-34s %s\n",
			truncate(tt.Task.Title, 34), cli.FormatDuration(tt.Total))
	}

	_, _ = fmt.Fprintln(deps.Stdout, "By project:")
	for _, pt := range report.ProjectTotals(tasks, start, end, now) {
		name := e.projectTitle(pt.ProjectID)
		if name == "" {
			name = "(no project)"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %-34s %s\n", truncate(name, 34), cli.FormatDuration(pt.Total))
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s\n", cli.FormatDuration(grand))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
