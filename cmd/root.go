package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/cli"
	"github.com/1cbyc/time-tracker/internal/report"
)

var rootCmd = &cobra.Command{
	Use:   "time-tracker",
	Short: "A local time tracking application",
	Long: `time-tracker records work time against tasks and projects.

Usage:
  time-tracker                        List today's time entries
  time-tracker start <title>          Start the timer on a new task
  time-tracker start --on <n>         Restart entry n from today's list
  time-tracker stop                   Stop the running timer
  time-tracker status                 Show the running timer
  time-tracker add <title>            Create a task without starting it
  time-tracker tasks                  List tasks with all-time totals
  time-tracker delete <n>             Delete time entry n from today's list
  time-tracker report [day|week|month]  Aggregated totals for a window
  time-tracker export                 Export time entries as CSV or JSON
  time-tracker tui                    Open the interactive dashboard`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listToday()
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tuiCmd)
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"time-tracker version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// listToday prints today's time items with a per-day total.
func listToday() {
	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	now := e.store.Now()
	items := report.ItemsForDate(e.store.Tasks(), now, now)
	if len(items) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No time entries for today")
		return
	}

	var total time.Duration
	for _, t := range e.store.TasksByDate(now) {
		total += report.DurationForDate(t, now, now)
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Today:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	maxIndexWidth := len(fmt.Sprintf("%d", len(items)))
	for i, item := range items {
		line := cli.FormatItem(item, now)
		if title := e.projectTitle(item.Task.ProjectID); title != "" {
			line = fmt.Sprintf("%s  @%s", line, title)
		}
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s\n", maxIndexWidth, i+1, line)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s\n", cli.FormatDuration(total))
}
