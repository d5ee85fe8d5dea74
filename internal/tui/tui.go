package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/1cbyc/time-tracker/internal/config"
	"github.com/1cbyc/time-tracker/internal/taskstore"
	"github.com/1cbyc/time-tracker/internal/tui/ui"
)

type tab int

const (
	tabTimer tab = iota
	tabEntries
	tabReport
)

var tabNames = []string{"Timer", "Entries", "Report"}

// tickMsg is sent once a second to refresh elapsed durations.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the root TUI model. All store mutations happen inside
// Update, on the program goroutine; ticks only re-render.
type Model struct {
	store    *taskstore.Store
	projects *taskstore.ProjectStore
	cfg      *config.Config

	keys   ui.KeyMap
	themes *ui.ThemeProvider
	styles ui.Styles

	tab      tab
	timer    timerModel
	entries  entriesModel
	report   reportModel
	showHelp bool
	err      string

	width  int
	height int
}

// New creates the root model wired to the given stores and config.
func New(store *taskstore.Store, projects *taskstore.ProjectStore, cfg *config.Config) Model {
	themes := ui.NewThemeProvider(cfg.Theme)
	m := Model{
		store:    store,
		projects: projects,
		cfg:      cfg,
		keys:     ui.DefaultKeyMap(),
		themes:   themes,
		styles:   themes.Styles(),
	}
	m.timer = newTimerModel()
	m.entries = newEntriesModel()
	m.report = newReportModel(cfg)
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tickCmd()

	case tea.KeyMsg:
		// The new-task form captures all keys while open.
		if m.tab == tabTimer && m.timer.form != nil {
			return m.updateTimerForm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tab(len(tabNames))
			m.err = ""
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
			m.err = ""
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			m.cfg.Theme = m.themes.NextTheme()
			m.styles = m.themes.Styles()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}

		switch m.tab {
		case tabTimer:
			return m.updateTimer(msg)
		case tabEntries:
			return m.updateEntries(msg)
		case tabReport:
			return m.updateReport(msg)
		}
	}

	// Non-key messages may belong to an open form.
	if m.tab == tabTimer && m.timer.form != nil {
		return m.updateTimerForm(msg)
	}
	return m, nil
}

func (m Model) View() string {
	header := m.viewTabs()

	var body string
	switch m.tab {
	case tabTimer:
		body = m.viewTimer()
	case tabEntries:
		body = m.viewEntries()
	case tabReport:
		body = m.viewReport()
	}

	sections := []string{header, body}
	if m.err != "" {
		sections = append(sections, m.styles.Error.Render(m.err))
	}
	if m.showHelp {
		sections = append(sections, m.viewHelp())
	} else {
		sections = append(sections, m.styles.Help.Render("? help · tab switch · q quit"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) viewTabs() string {
	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.tab {
			rendered[i] = m.styles.TabActive.Render(name)
		} else {
			rendered[i] = m.styles.Tab.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewHelp() string {
	lines := []string{
		"↑/k ↓/j  move    enter  start timer    s  stop timer",
		"n  new task      d  delete entry       1/2/3  day/week/month",
		"t  cycle theme   tab  switch tab       q  quit",
	}
	return m.styles.Help.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// projectTitle resolves a project key to its title, or "" when unset
// or unknown.
func (m Model) projectTitle(projectID string) string {
	if projectID == "" {
		return ""
	}
	if p := m.projects.Get(projectID); p != nil {
		return p.Title
	}
	return ""
}
