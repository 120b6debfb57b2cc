package cmd

import (
	"fmt"
	"time"

	"studylog/internal/services"
	"studylog/internal/theme"
)

// SummaryCmd shows a summary of the last N days
type SummaryCmd struct {
	Days int `help:"Look-back window in days" default:"7"`
}

// Run executes the summary command
func (s *SummaryCmd) Run(cli *CLI) error {
	days := cli.windowDays(s.Days)
	if days <= 0 {
		return fmt.Errorf("days must be positive, got %d", days)
	}

	summary := cli.Container.TrackerService.Summarize(days, time.Now())

	fmt.Println(theme.TitleStyle.Render(fmt.Sprintf("Summary for Last %d Days", summary.Days)))

	if summary.SessionCount == 0 {
		fmt.Printf("No study sessions in the past %d days.\n", summary.Days)
		if summary.Streak > 0 {
			fmt.Printf("Current streak: %d day(s)\n", summary.Streak)
		}
		return nil
	}

	printStat("Study sessions", fmt.Sprintf("%d", summary.SessionCount))
	printStat("Time studied", services.FormatMinutes(summary.TotalMinutes))
	printStat("Average productivity", fmt.Sprintf("%.1f/5", summary.AverageProductivity))
	printStat("Most studied subject", fmt.Sprintf("%s (%s)",
		summary.MostStudiedSubject, services.FormatMinutes(summary.MostStudiedMinutes)))
	printStat("Best focus subject", fmt.Sprintf("%s (avg %.1f/5)",
		summary.BestSubject, summary.BestSubjectAverage))
	printStat("Subjects covered", fmt.Sprintf("%d", summary.SubjectsCovered))
	printStat("Current streak", fmt.Sprintf("%d day(s)", summary.Streak))

	if summary.SkippedRecords > 0 {
		fmt.Println(theme.MutedStyle.Render(
			fmt.Sprintf("(%d record(s) with unreadable timestamps were skipped)", summary.SkippedRecords)))
	}

	if cli.settings == nil || cli.settings.ShowMessage == nil || *cli.settings.ShowMessage {
		fmt.Println()
		fmt.Println(theme.SuccessStyle.Render(services.MotivationalMessage()))
	}
	return nil
}

func printStat(label, value string) {
	fmt.Printf("%s %s\n",
		theme.LabelStyle.Render(fmt.Sprintf("%-22s", label+":")),
		theme.ValueStyle.Render(value))
}
