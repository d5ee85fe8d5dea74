package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/config"
	"github.com/1cbyc/time-tracker/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	Long:  "Open a full-screen dashboard with a live timer, today's entries, and reports.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		e, err := openEnv()
		if err != nil {
			failEnv(err)
			return
		}
		defer e.flush()

		theme := e.cfg.Theme
		model := tui.New(e.store, e.projects, &e.cfg)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: The dashboard crashed")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}

		// Persist a theme change made inside the dashboard.
		if e.cfg.Theme != theme {
			if path, err := deps.ConfigPath(); err == nil {
				if err := config.Save(path, e.cfg); err != nil {
					_, _ = fmt.Fprintf(deps.Stderr, "Warning: could not save config: %v\n", err)
				}
			}
		}
	},
}
