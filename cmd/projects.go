package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/task"
)

var projectColorFlag string

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	Long: `List the projects tasks can be filed under.

Examples:
  time-tracker projects
  time-tracker projects add Website --color '#1890ff'`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listProjects()
	},
}

// projectsAddCmd creates a project.
var projectsAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a project",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addProject(strings.Join(args, " "))
	},
}

func init() {
	projectsCmd.AddCommand(projectsAddCmd)
	projectsAddCmd.Flags().StringVar(&projectColorFlag, "color", "", "hex color for the project (e.g. #1890ff)")
}

func listProjects() {
	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	projects := e.projects.Projects()
	if len(projects) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No projects yet")
		_, _ = fmt.Fprintln(deps.Stdout, "Create one with: time-tracker projects add <title>")
		return
	}

	for _, p := range projects {
		if p.Color != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "%s (%s)\n", p.Title, p.Color)
		} else {
			_, _ = fmt.Fprintln(deps.Stdout, p.Title)
		}
	}
}

func addProject(title string) {
	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	p := task.NewProject(strings.TrimSpace(title), projectColorFlag)
	if err := e.projects.Add(p); err != nil {
		reportStoreError(err, "create the project")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Added project: %s\n", p.Title)
}
