package cmd

import (
	"fmt"

	"studylog/internal/theme"
)

// ExportCmd exports all sessions to a CSV file
type ExportCmd struct {
	Output string `arg:"" optional:"" help:"Destination CSV file (default: alongside the data file)"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	path, err := cli.Container.TrackerService.ExportCSV(e.Output)
	if err != nil {
		return fmt.Errorf("failed to export sessions: %w", err)
	}

	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("CSV exported to %s", path)))
	return nil
}
