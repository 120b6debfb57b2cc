package cmd

import (
	"fmt"
	"strings"

	"studylog/internal/analytics"
	"studylog/internal/services"
	"studylog/internal/theme"
)

// StatsCmd shows study time distribution per subject
type StatsCmd struct{}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	tracker := cli.Container.TrackerService
	sessions := tracker.Sessions()

	fmt.Println(theme.TitleStyle.Render("Study Time by Subject"))

	if len(sessions) == 0 {
		fmt.Println("No study sessions recorded yet.")
		return nil
	}

	totals := tracker.Totals(sessions)
	grandTotal := analytics.TotalDuration(sessions)

	// Header
	fmt.Printf("%-30s %-12s %s\n", "Subject", "Time", "Share")
	fmt.Println(strings.Repeat("─", 55))

	for _, t := range totals {
		share := float64(t.Minutes) / float64(grandTotal) * 100
		fmt.Printf("%-30s %-12s %.1f%%\n",
			t.Subject,
			services.FormatMinutes(t.Minutes),
			share)
	}

	fmt.Println(strings.Repeat("─", 55))
	fmt.Printf("%-30s %-12s\n", "Total", services.FormatMinutes(grandTotal))

	fmt.Printf("\nSessions: %d   Average productivity: %.1f/5\n",
		analytics.SessionCount(sessions),
		analytics.AverageProductivity(sessions))

	if subject, minutes, ok := analytics.MostStudied(sessions); ok {
		fmt.Printf("Most studied: %s (%s)\n", subject, services.FormatMinutes(minutes))
	}
	if subject, avg := analytics.BestProductivitySubject(sessions); subject != "" {
		fmt.Printf("Best focus: %s (avg %.1f/5)\n", subject, avg)
	}

	return nil
}
