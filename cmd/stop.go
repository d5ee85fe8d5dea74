package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/cli"
	"github.com/1cbyc/time-tracker/internal/report"
	"github.com/1cbyc/time-tracker/internal/taskstore"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running timer",
	Long: `Stop the currently running timer. The open time range of the active
task is closed at the current instant; the task keeps its full history.

Examples:
  time-tracker stop`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stopTimer()
	},
}

func stopTimer() {
	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	stopped, err := e.store.StopTimer()
	if err != nil {
		if errors.Is(err, taskstore.ErrNoTimerRunning) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: No timer is running")
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start a timer with 'time-tracker start <title>'")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to stop the timer")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	now := e.store.Now()
	last := stopped.Time[len(stopped.Time)-1]
	_, _ = fmt.Fprintf(deps.Stdout, "Stopped: %s (%s)\n",
		cli.FormatTaskTitle(stopped.Title, e.projectTitle(stopped.ProjectID)),
		cli.FormatDuration(last.Duration(now)))
	_, _ = fmt.Fprintf(deps.Stdout, "Today on this task: %s\n",
		cli.FormatDuration(report.DurationForDate(stopped, now, now)))
}
