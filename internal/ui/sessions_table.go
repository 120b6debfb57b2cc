package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"studylog/internal/domain"
	"studylog/internal/theme"
)

const notesPreviewLength = 50

// NewSessionsTable builds the sessions browser table, newest first
func NewSessionsTable(records []domain.SessionRecord, height int) table.Model {
	columns := []table.Column{
		{Title: "Date & Time", Width: 19},
		{Title: "Subject", Width: 20},
		{Title: "Duration", Width: 10},
		{Title: "Productivity", Width: 12},
		{Title: "Notes", Width: notesPreviewLength + 3},
	}

	// Newest first for browsing
	rows := make([]table.Row, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		rows = append(rows, table.Row{
			r.Timestamp,
			r.Subject,
			strconv.Itoa(r.Duration) + " min",
			strconv.Itoa(r.Productivity) + "/5",
			truncateNotes(r.Notes),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(theme.ColorPrimary)
	styles.Selected = styles.Selected.
		Foreground(theme.ColorHighlight).
		Background(theme.ColorPrimary).
		Bold(false)
	t.SetStyles(styles)

	return t
}

// truncateNotes flattens and shortens long notes for the table preview
func truncateNotes(notes string) string {
	notes = strings.Join(strings.Fields(notes), " ")
	runes := []rune(notes)
	if len(runes) <= notesPreviewLength {
		return notes
	}
	return string(runes[:notesPreviewLength]) + "..."
}
