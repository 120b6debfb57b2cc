package services

import (
	"fmt"
	"sort"
	"time"

	"studylog/internal/analytics"
	"studylog/internal/domain"
	"studylog/internal/logging"
	"studylog/internal/ports"
)

// TrackerService composes the session store and the analytics
// functions. It owns user-facing validation: invalid input is rejected
// here, before a record is ever constructed, so the store can stay a
// trusting append/replace layer.
type TrackerService struct {
	log ports.SessionLog
}

// NewTrackerService creates a new TrackerService
func NewTrackerService(log ports.SessionLog) *TrackerService {
	return &TrackerService{log: log}
}

// LogSession validates the input and appends a new session to the log
func (t *TrackerService) LogSession(subject string, duration, productivity int, notes string) error {
	trimmed, err := domain.ValidateSubject(subject)
	if err != nil {
		return err
	}
	if err := domain.ValidateDuration(duration); err != nil {
		return err
	}
	if err := domain.ValidateProductivity(productivity); err != nil {
		return err
	}

	if err := t.log.AddSession(trimmed, duration, productivity, notes); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	logging.Logger.Info("Session logged",
		"subject", trimmed,
		"duration", duration,
		"productivity", productivity)
	return nil
}

// Sessions returns the full log in stored (oldest-first) order
func (t *TrackerService) Sessions() []domain.SessionRecord {
	return t.log.Load()
}

// Totals returns the per-subject time distribution over the given
// records, sorted by descending total with deterministic order for
// equal totals (first-encountered subject first)
func (t *TrackerService) Totals(records []domain.SessionRecord) []SubjectTotal {
	byMinutes := analytics.TotalsBySubject(records)
	order := analytics.SubjectOrder(records)

	totals := make([]SubjectTotal, 0, len(order))
	for _, subject := range order {
		totals = append(totals, SubjectTotal{Subject: subject, Minutes: byMinutes[subject]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Minutes > totals[j].Minutes
	})
	return totals
}

// Summarize computes the windowed summary for the last `days` days
func (t *TrackerService) Summarize(days int, now time.Time) Summary {
	all := t.log.Load()
	windowed, skipped := analytics.WindowedCounted(all, days, now)
	if skipped > 0 {
		logging.Logger.Debug("Skipped records with unparseable timestamps", "count", skipped)
	}

	summary := Summary{
		Days:                days,
		SessionCount:        analytics.SessionCount(windowed),
		TotalMinutes:        analytics.TotalDuration(windowed),
		AverageProductivity: analytics.AverageProductivity(windowed),
		SubjectsCovered:     len(analytics.TotalsBySubject(windowed)),
		Streak:              analytics.StudyStreak(all, now),
		SkippedRecords:      skipped,
	}

	if subject, minutes, ok := analytics.MostStudied(windowed); ok {
		summary.MostStudiedSubject = subject
		summary.MostStudiedMinutes = minutes
	}
	summary.BestSubject, summary.BestSubjectAverage = analytics.BestProductivitySubject(windowed)

	return summary
}

// ExportCSV exports the full log; empty dest uses the default path
func (t *TrackerService) ExportCSV(dest string) (string, error) {
	return t.log.ExportCSV(dest)
}

// ClearAll deletes all session data
func (t *TrackerService) ClearAll() error {
	return t.log.ClearAll()
}
