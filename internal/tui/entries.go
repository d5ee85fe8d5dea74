package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/1cbyc/time-tracker/internal/cli"
	"github.com/1cbyc/time-tracker/internal/report"
)

// entriesModel holds the state of the Entries tab: a cursor over
// today's time items.
type entriesModel struct {
	cursor int
}

func newEntriesModel() entriesModel {
	return entriesModel{}
}

func (m Model) todayItems() []report.TimeItem {
	now := m.store.Now()
	return report.ItemsForDate(m.store.Tasks(), now, now)
}

func (m Model) updateEntries(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.todayItems()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.entries.cursor > 0 {
			m.entries.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.entries.cursor < len(items)-1 {
			m.entries.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		// Restart: start a fresh timer on the entry's task.
		if m.entries.cursor < len(items) {
			if err := m.store.StartTimer(items[m.entries.cursor].Task.Key); err != nil {
				m.err = err.Error()
			} else {
				m.err = ""
			}
		}
	case key.Matches(msg, m.keys.Delete):
		if m.entries.cursor < len(items) {
			item := items[m.entries.cursor]
			if err := m.store.RemoveTimeRange(item.Task.Key, item.Index); err != nil {
				m.err = err.Error()
			} else {
				m.err = ""
				if m.entries.cursor > 0 && m.entries.cursor >= len(items)-1 {
					m.entries.cursor--
				}
			}
		}
	}
	return m, nil
}

func (m Model) viewEntries() string {
	now := m.store.Now()
	items := m.todayItems()

	if len(items) == 0 {
		return m.styles.Border.Render(m.styles.Muted.Render("No time tracked today."))
	}

	rows := make([]string, 0, len(items)+1)
	var total time.Duration
	for i, item := range items {
		dur := item.Range.Duration(now)
		total += dur
		line := fmt.Sprintf("%2d. %s  %s  %s",
			i+1,
			cli.FormatRangeSpan(item.Range),
			m.styles.Project.Render(cli.FormatTaskTitle(item.Task.Title, m.projectTitle(item.Task.ProjectID))),
			cli.FormatDuration(dur),
		)
		if item.Range.Open() {
			line += " " + m.styles.Running.Render("●")
		}
		if i == m.entries.cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = m.styles.Normal.Render("  " + line)
		}
		rows = append(rows, line)
	}
	rows = append(rows, "")
	rows = append(rows, m.styles.Total.Render("Total: "+cli.FormatClock(total)))

	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return m.styles.Border.Render(b.String())
}
