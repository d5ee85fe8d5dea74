package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/cli"
	"github.com/1cbyc/time-tracker/internal/report"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running timer",
	Long: `Show the currently running timer, if any: the task, when the open
range started, its elapsed time, and the task's total for today.

Examples:
  time-tracker status`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

func showStatus() {
	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	active := e.store.ActiveTask()
	if active == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "No timer running")
		_, _ = fmt.Fprintln(deps.Stdout, "Start a timer with: time-tracker start <title>")
		return
	}

	now := e.store.Now()
	i, _ := active.OpenRange()
	open := active.Time[i]

	startTime := open.Start.Format("3:04 PM")
	startedAt := fmt.Sprintf("%s at %s", open.Start.Format("Mon Jan 2"), startTime)
	if open.Start.Year() == now.Year() && open.Start.YearDay() == now.YearDay() {
		startedAt = fmt.Sprintf("today at %s", startTime)
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Timer running:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s\n",
		cli.FormatTaskTitle(active.Title, e.projectTitle(active.ProjectID)))
	_, _ = fmt.Fprintf(deps.Stdout, "  Started: %s\n", startedAt)
	_, _ = fmt.Fprintf(deps.Stdout, "  Elapsed: %s\n", cli.FormatClock(open.Duration(now)))
	_, _ = fmt.Fprintf(deps.Stdout, "  Today:   %s\n",
		cli.FormatDuration(report.DurationForDate(active, now, now)))
}
