package cmd

import (
	"fmt"

	"studylog/internal/services"
	"studylog/internal/theme"
)

// LogCmd logs a study session from the command line
type LogCmd struct {
	Subject      string `arg:"" help:"Subject studied"`
	Duration     int    `arg:"" help:"Duration in minutes (1-1440)"`
	Productivity int    `help:"Productivity score (1-5)" short:"p" default:"3"`
	Notes        string `help:"Optional notes" short:"n" default:""`
}

// Run executes the log command
func (l *LogCmd) Run(cli *CLI) error {
	if err := cli.Container.TrackerService.LogSession(l.Subject, l.Duration, l.Productivity, l.Notes); err != nil {
		return err
	}

	fmt.Println(theme.SuccessStyle.Render(services.SessionSavedMessage(l.Duration, l.Subject)))
	return nil
}
