package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/cli"
	"github.com/1cbyc/time-tracker/internal/report"
	"github.com/1cbyc/time-tracker/internal/task"
)

var (
	startProjectFlag string
	startOnFlag      int
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [title]",
	Short: "Start the timer",
	Long: `Start the timer on a task. With a title, a new task is created and
started in one step. With --on, the task behind entry n of today's list
is restarted with a fresh time range.

Starting a timer always stops any other running timer first; two timers
never run at once.

Examples:
  time-tracker start fixing authentication bug
  time-tracker start api work --project Backend
  time-tracker start --on 2`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		startTimer(args)
	},
}

func init() {
	startCmd.Flags().StringVarP(&startProjectFlag, "project", "p", "", "project title or key to file the task under")
	startCmd.Flags().IntVar(&startOnFlag, "on", 0, "restart the task behind entry n of today's list")
}

func startTimer(args []string) {
	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	prev := e.store.ActiveTask()

	var started *task.Task
	if startOnFlag > 0 {
		started = restartItem(e, startOnFlag)
	} else {
		started = quickAdd(e, strings.Join(args, " "), startProjectFlag)
	}
	if started == nil {
		return
	}

	if err := e.store.StartTimer(started.Key); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to start the timer")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Timer started: %s\n",
		cli.FormatTaskTitle(started.Title, e.projectTitle(started.ProjectID)))
	if prev != nil && prev.Key != started.Key {
		_, _ = fmt.Fprintf(deps.Stdout, "(Stopped: %s)\n", prev.Title)
	}
}

// restartItem resolves entry n of today's list to its owning task.
func restartItem(e *env, n int) *task.Task {
	now := e.store.Now()
	items := report.ItemsForDate(e.store.Tasks(), now, now)
	if n > len(items) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Entry %d is out of range\n", n)
		if len(items) == 0 {
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: No entries today; start a task by title instead")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Valid range: 1-%d\n", len(items))
		}
		deps.Exit(1)
		return nil
	}
	return items[n-1].Task
}

// quickAdd creates a validated task from the command line, resolving the
// project flag value against the project store.
func quickAdd(e *env, title, project string) *task.Task {
	title = strings.TrimSpace(title)
	if title == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Task title cannot be empty")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: time-tracker start <title>")
		_, _ = fmt.Fprintln(deps.Stderr, "Example: time-tracker start fixing authentication bug")
		deps.Exit(1)
		return nil
	}

	projectID := ""
	if project != "" {
		p := e.projects.FindByTitle(project)
		if p == nil {
			p = e.projects.Get(project)
		}
		if p == nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown project %q\n", project)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List projects with 'time-tracker projects'")
			deps.Exit(1)
			return nil
		}
		projectID = p.Key
	}

	t := task.New(title, projectID)
	if err := e.store.Add(t); err != nil {
		reportStoreError(err, "create the task")
		return nil
	}
	return t
}

// reportStoreError prints a store failure, expanding validation message
// lists the way the UI layer would.
func reportStoreError(err error, action string) {
	var verr *task.ValidationError
	if errors.As(err, &verr) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to %s\n", action)
		for _, msg := range verr.Errors {
			_, _ = fmt.Fprintf(deps.Stderr, "  - %s\n", msg)
		}
	} else {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to %s\n", action)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	deps.Exit(1)
}
