package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/cli"
)

var addProjectFlag string

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task without starting the timer",
	Long: `Create a task without starting the timer. The task shows up in
'time-tracker tasks' and can be started later.

Examples:
  time-tracker add refactor storage layer
  time-tracker add write release notes --project Website`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addTask(args)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addProjectFlag, "project", "p", "", "project title or key to file the task under")
}

func addTask(args []string) {
	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	t := quickAdd(e, strings.Join(args, " "), addProjectFlag)
	if t == nil {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added: %s\n",
		cli.FormatTaskTitle(t.Title, e.projectTitle(t.ProjectID)))
}
