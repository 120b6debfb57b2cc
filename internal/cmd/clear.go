package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"studylog/internal/theme"
)

// ClearCmd deletes all session data
type ClearCmd struct {
	Force bool `help:"Skip the confirmation prompt" short:"f"`
}

// Run executes the clear command
func (c *ClearCmd) Run(cli *CLI) error {
	if !c.Force {
		confirmed := false
		prompt := huh.NewConfirm().
			Title("Delete all study sessions?").
			Description("This action cannot be undone.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := cli.Container.TrackerService.ClearAll(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	fmt.Println(theme.SuccessStyle.Render("All study session data has been cleared."))
	return nil
}
