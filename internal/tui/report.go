package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/1cbyc/time-tracker/internal/cli"
	"github.com/1cbyc/time-tracker/internal/config"
	"github.com/1cbyc/time-tracker/internal/report"
	"github.com/1cbyc/time-tracker/internal/timeutil"
)

type reportPeriod int

const (
	periodDay reportPeriod = iota
	periodWeek
	periodMonth
)

// reportModel holds the state of the Report tab.
type reportModel struct {
	period    reportPeriod
	weekStart time.Weekday
}

func newReportModel(cfg *config.Config) reportModel {
	return reportModel{
		period:    periodDay,
		weekStart: cfg.WeekStart(),
	}
}

func (r reportModel) window(now time.Time) (time.Time, time.Time, string) {
	switch r.period {
	case periodWeek:
		from, to := timeutil.WeekWindow(now, r.weekStart)
		return from, to, "This week"
	case periodMonth:
		from, to := timeutil.MonthWindow(now)
		return from, to, now.Format("January 2006")
	default:
		from, to := timeutil.DayWindow(now)
		return from, to, "Today"
	}
}

func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Day):
		m.report.period = periodDay
	case key.Matches(msg, m.keys.Week):
		m.report.period = periodWeek
	case key.Matches(msg, m.keys.Month):
		m.report.period = periodMonth
	}
	return m, nil
}

func (m Model) viewReport() string {
	now := m.store.Now()
	from, to, label := m.report.window(now)
	tasks := m.store.Tasks()

	taskTotals := report.TaskTotals(tasks, from, to, now)
	projectTotals := report.ProjectTotals(tasks, from, to, now)

	rows := []string{m.styles.Title.Render(label), ""}

	if len(taskTotals) == 0 {
		rows = append(rows, m.styles.Muted.Render("No time tracked in this period."))
		return m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	var total time.Duration
	for _, tt := range taskTotals {
		total += tt.Total
		rows = append(rows, fmt.Sprintf("  %s  %s",
			m.styles.Normal.Render(cli.FormatTaskTitle(tt.Task.Title, m.projectTitle(tt.Task.ProjectID))),
			m.styles.Elapsed.Render(cli.FormatDuration(tt.Total)),
		))
	}

	if len(projectTotals) > 0 {
		rows = append(rows, "", m.styles.Title.Render("By project"))
		for _, pt := range projectTotals {
			name := m.projectTitle(pt.ProjectID)
			if name == "" {
				name = "(no project)"
			}
			rows = append(rows, fmt.Sprintf("  %s  %s",
				m.styles.Project.Render(name),
				m.styles.Elapsed.Render(cli.FormatDuration(pt.Total)),
			))
		}
	}

	rows = append(rows, "", m.styles.Total.Render("Total: "+cli.FormatClock(total)))
	return m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
