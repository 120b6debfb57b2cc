package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"studylog/internal/logging"
	"studylog/internal/services"
	"studylog/internal/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
)

const defaultTableHeight = 12

// Model is the top-level Bubble Tea model: a sessions browser with an
// entry form overlay. All statistics shown here come from the tracker
// service; the UI contributes no logic of its own.
type Model struct {
	tracker    *services.TrackerService
	windowDays int

	mode   mode
	table  table.Model
	form   *EntryForm
	status string
	isErr  bool
	height int
}

// NewModel creates the TUI model
func NewModel(tracker *services.TrackerService, windowDays int) Model {
	m := Model{
		tracker:    tracker,
		windowDays: windowDays,
		height:     defaultTableHeight,
	}
	m.table = NewSessionsTable(tracker.Sessions(), m.height)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(4, msg.Height-10)
		m.table = NewSessionsTable(m.tracker.Sessions(), m.height)
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == modeAdd {
		return m.updateForm(msg)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateBrowse handles keys in the sessions browser
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.mode = modeAdd
		m.form = NewEntryForm(m.tracker)
		m.status = ""
		return m, m.form.Init()
	case "e":
		path, err := m.tracker.ExportCSV("")
		if err != nil {
			m.setStatus(fmt.Sprintf("Export failed: %v", err), true)
		} else {
			m.setStatus(fmt.Sprintf("CSV exported to %s", path), false)
		}
		return m, nil
	case "r":
		m.table = NewSessionsTable(m.tracker.Sessions(), m.height)
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateForm forwards messages to the entry form and handles completion
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.form.Update(msg)
	if f, ok := model.(*EntryForm); ok {
		m.form = f
	}

	if m.form.Completed {
		result := m.form.Result()
		m.mode = modeBrowse
		m.form = nil
		switch {
		case result.Cancelled:
			m.status = ""
		case result.Error != nil:
			m.setStatus(fmt.Sprintf("Failed to save session: %v", result.Error), true)
		default:
			m.setStatus(result.Message, false)
			m.table = NewSessionsTable(m.tracker.Sessions(), m.height)
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.isErr = isErr
	logging.Logger.Debug("Status updated", "status", status, "is_error", isErr)
}

func (m Model) View() string {
	if m.mode == modeAdd && m.form != nil {
		return theme.TitleStyle.Render("Log Study Session") + "\n" + m.form.View()
	}

	view := theme.TitleStyle.Render("Study Tracker") + "\n"
	view += m.summaryLine() + "\n\n"
	view += m.table.View() + "\n"

	if m.status != "" {
		if m.isErr {
			view += theme.ErrorStyle.Render(m.status) + "\n"
		} else {
			view += theme.SuccessStyle.Render(m.status) + "\n"
		}
	}

	view += theme.HelpStyle.Render("a: log session • e: export CSV • r: refresh • q: quit")
	return view
}

// summaryLine renders the windowed headline statistics
func (m Model) summaryLine() string {
	summary := m.tracker.Summarize(m.windowDays, time.Now())

	parts := fmt.Sprintf("Last %d days: %s sessions, %s, streak %s",
		summary.Days,
		theme.ValueStyle.Render(fmt.Sprintf("%d", summary.SessionCount)),
		theme.ValueStyle.Render(services.FormatMinutes(summary.TotalMinutes)),
		theme.ValueStyle.Render(fmt.Sprintf("%d day(s)", summary.Streak)),
	)
	return theme.LabelStyle.Render(parts)
}
