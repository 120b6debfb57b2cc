package cmd

import (
	"fmt"
	"strings"

	"studylog/internal/analytics"
	"studylog/internal/services"
)

// ListCmd lists all logged sessions
type ListCmd struct {
	Oldest bool `help:"List oldest sessions first instead of newest"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	sessions := cli.Container.TrackerService.Sessions()
	if len(sessions) == 0 {
		fmt.Println("No study sessions recorded yet.")
		return nil
	}

	fmt.Printf("Study Sessions (%d total, %s)\n\n",
		len(sessions),
		services.FormatMinutes(analytics.TotalDuration(sessions)))

	// Header
	fmt.Printf("%-20s %-20s %-10s %-12s %s\n", "Date & Time", "Subject", "Duration", "Productivity", "Notes")
	fmt.Println(strings.Repeat("─", 90))

	if l.Oldest {
		for _, s := range sessions {
			printSessionRow(s.Timestamp, s.Subject, s.Duration, s.Productivity, s.Notes)
		}
		return nil
	}
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		printSessionRow(s.Timestamp, s.Subject, s.Duration, s.Productivity, s.Notes)
	}
	return nil
}

func printSessionRow(timestamp, subject string, duration, productivity int, notes string) {
	preview := strings.Join(strings.Fields(notes), " ")
	if runes := []rune(preview); len(runes) > 40 {
		preview = string(runes[:40]) + "..."
	}
	fmt.Printf("%-20s %-20s %-10s %-12s %s\n",
		timestamp,
		subject,
		fmt.Sprintf("%d min", duration),
		fmt.Sprintf("%d/5", productivity),
		preview)
}
