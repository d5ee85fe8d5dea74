package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/cli"
	"github.com/1cbyc/time-tracker/internal/report"
)

// tasksCmd represents the tasks command
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks with all-time totals",
	Long: `List every task with its all-time tracked total. The running task is
marked with an asterisk.

Examples:
  time-tracker tasks
  time-tracker tasks rm 2`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listTasks()
	},
}

// tasksRmCmd removes a task and its whole time history.
var tasksRmCmd = &cobra.Command{
	Use:   "rm <n>",
	Short: "Remove a task and its time entries",
	Long: `Remove task n (as numbered by 'time-tracker tasks') together with
all of its time entries. Removing the running task stops the timer first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		removeTask(args[0])
	},
}

func init() {
	tasksCmd.AddCommand(tasksRmCmd)
}

func listTasks() {
	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	tasks := e.store.Tasks()
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No tasks yet")
		_, _ = fmt.Fprintln(deps.Stdout, "Create one with: time-tracker add <title>")
		return
	}

	now := e.store.Now()
	maxIndexWidth := len(fmt.Sprintf("%d", len(tasks)))
	_, _ = fmt.Fprintln(deps.Stdout, "Tasks:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for i, t := range tasks {
		marker := " "
		if t.Active {
			marker = "*"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d]%s %s  %s\n",
			maxIndexWidth, i+1, marker,
			cli.FormatTaskTitle(t.Title, e.projectTitle(t.ProjectID)),
			cli.FormatDuration(report.TotalDuration(t, now)))
	}
}

func removeTask(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid task number %q\n", arg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List tasks with 'time-tracker tasks' to see numbers")
		deps.Exit(1)
		return
	}

	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	tasks := e.store.Tasks()
	if n > len(tasks) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Task %d is out of range\n", n)
		_, _ = fmt.Fprintf(deps.Stderr, "Valid range: 1-%d\n", len(tasks))
		deps.Exit(1)
		return
	}

	removed := tasks[n-1]
	if err := e.store.Remove(removed.Key); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to remove the task")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Removed: %s (%d time entries)\n", removed.Title, len(removed.Time))
}
