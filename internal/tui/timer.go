package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/1cbyc/time-tracker/internal/cli"
	"github.com/1cbyc/time-tracker/internal/report"
	"github.com/1cbyc/time-tracker/internal/task"
)

// timerModel holds the state of the Timer tab: a cursor over the task
// list and an optional new-task form.
type timerModel struct {
	cursor int

	// Form values are pointers so copies of the model share them with
	// the form while it is open.
	form        *huh.Form
	formTitle   *string
	formProject *string
	formStart   *bool
}

func newTimerModel() timerModel {
	return timerModel{}
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.store.Tasks()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.timer.cursor > 0 {
			m.timer.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.timer.cursor < len(tasks)-1 {
			m.timer.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.timer.cursor < len(tasks) {
			if err := m.store.StartTimer(tasks[m.timer.cursor].Key); err != nil {
				m.err = err.Error()
			} else {
				m.err = ""
			}
		}
	case key.Matches(msg, m.keys.StartStop):
		if _, err := m.store.StopTimer(); err != nil {
			m.err = err.Error()
		} else {
			m.err = ""
		}
	case key.Matches(msg, m.keys.NewTask):
		return m.openTaskForm()
	}
	return m, nil
}

// openTaskForm builds and opens the new-task form.
func (m Model) openTaskForm() (tea.Model, tea.Cmd) {
	m.timer.formTitle = new(string)
	m.timer.formProject = new(string)
	start := true
	m.timer.formStart = &start

	options := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, p := range m.projects.Projects() {
		options = append(options, huh.NewOption(p.Title, p.Key))
	}

	m.timer.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task title").
				Value(m.timer.formTitle),
			huh.NewSelect[string]().
				Title("Project").
				Options(options...).
				Value(m.timer.formProject),
			huh.NewConfirm().
				Title("Start timer now?").
				Value(m.timer.formStart),
		),
	)
	return m, m.timer.form.Init()
}

func (m Model) updateTimerForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.timer.form = nil
		return m, nil
	}

	form, cmd := m.timer.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.timer.form = f
	}

	if m.timer.form.State == huh.StateCompleted {
		m.timer.form = nil
		title := strings.TrimSpace(*m.timer.formTitle)
		if title == "" {
			return m, nil
		}
		t := task.New(title, *m.timer.formProject)
		if err := m.store.Add(t); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		if *m.timer.formStart {
			if err := m.store.StartTimer(t.Key); err != nil {
				m.err = err.Error()
			}
		}
		return m, nil
	}
	return m, cmd
}

func (m Model) viewTimer() string {
	if m.timer.form != nil {
		return m.timer.form.View()
	}

	now := m.store.Now()
	var b strings.Builder

	if active := m.store.ActiveTask(); active != nil {
		elapsed := report.TotalDuration(active, now)
		if i, ok := active.OpenRange(); ok {
			elapsed = active.Time[i].Duration(now)
		}
		b.WriteString(m.styles.Running.Render("● "+cli.FormatTaskTitle(active.Title, m.projectTitle(active.ProjectID))) + "\n")
		b.WriteString(m.styles.Elapsed.Render(cli.FormatClock(elapsed)) + "\n\n")
	} else {
		b.WriteString(m.styles.Stopped.Render("No timer running") + "\n\n")
	}

	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		b.WriteString(m.styles.Muted.Render("No tasks yet. Press n to create one."))
		return m.styles.Border.Render(b.String())
	}

	rows := make([]string, 0, len(tasks))
	for i, t := range tasks {
		marker := "  "
		if t.Active {
			marker = m.styles.Running.Render("● ")
		}
		line := fmt.Sprintf("%s%s  %s",
			marker,
			cli.FormatTaskTitle(t.Title, m.projectTitle(t.ProjectID)),
			cli.FormatDuration(report.DurationForDate(t, now, now)),
		)
		if i == m.timer.cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = m.styles.Normal.Render("  " + line)
		}
		rows = append(rows, line)
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return m.styles.Border.Render(b.String())
}
