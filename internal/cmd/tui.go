package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"studylog/internal/config"
	"studylog/internal/logging"
	"studylog/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Days int `help:"Look-back window in days for the summary line" default:"7"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	days := cli.windowDays(r.Days)
	if days <= 0 {
		days = config.DefaultWindowDays
	}

	logging.Logger.Info("Starting studylog TUI", "window_days", days)

	p := tea.NewProgram(
		ui.NewModel(cli.Container.TrackerService, days),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
