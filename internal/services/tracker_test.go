package services

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studylog/internal/domain"
	"studylog/internal/storage"
)

func newTestService(t *testing.T) *TrackerService {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "study_data.json"))
	return NewTrackerService(store)
}

func TestLogSession_SavesValidInput(t *testing.T) {
	service := newTestService(t)

	err := service.LogSession("  Algorithms  ", 45, 4, "Reviewed sorting")

	require.NoError(t, err)
	sessions := service.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "Algorithms", sessions[0].Subject, "subject should be trimmed before the record is created")
	assert.Equal(t, 45, sessions[0].Duration)
	assert.Equal(t, 4, sessions[0].Productivity)
	assert.Equal(t, "Reviewed sorting", sessions[0].Notes)
}

func TestLogSession_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name         string
		subject      string
		duration     int
		productivity int
		wantErr      error
	}{
		{"empty subject", "", 30, 3, domain.ErrEmptySubject},
		{"whitespace subject", "   ", 30, 3, domain.ErrEmptySubject},
		{"subject too long", strings.Repeat("x", 101), 30, 3, domain.ErrSubjectTooLong},
		{"zero duration", "Math", 0, 3, domain.ErrInvalidDuration},
		{"duration over a day", "Math", 1500, 3, domain.ErrInvalidDuration},
		{"productivity too low", "Math", 30, 0, domain.ErrInvalidProductivity},
		{"productivity too high", "Math", 30, 6, domain.ErrInvalidProductivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t)

			err := service.LogSession(tt.subject, tt.duration, tt.productivity, "")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, service.Sessions(), "nothing should be persisted on validation failure")
		})
	}
}

func TestTotals_SortedByDescendingMinutes(t *testing.T) {
	service := newTestService(t)
	require.NoError(t, service.LogSession("Math", 30, 3, ""))
	require.NoError(t, service.LogSession("Physics", 90, 4, ""))
	require.NoError(t, service.LogSession("Math", 20, 5, ""))
	require.NoError(t, service.LogSession("History", 50, 2, ""))

	totals := service.Totals(service.Sessions())

	// Equal totals keep first-encountered order: Math before History
	assert.Equal(t, []SubjectTotal{
		{Subject: "Physics", Minutes: 90},
		{Subject: "Math", Minutes: 50},
		{Subject: "History", Minutes: 50},
	}, totals)
}

func TestSummarize(t *testing.T) {
	now := time.Now()

	// Two sessions today, one yesterday, one outside the window
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "study_data.json"))
	service := NewTrackerService(store)
	records := []domain.SessionRecord{
		domain.NewSessionRecord("Math", 30, 3, "", now.AddDate(0, 0, -10)),
		domain.NewSessionRecord("Math", 30, 3, "", now.AddDate(0, 0, -1)),
		domain.NewSessionRecord("Math", 30, 5, "", now),
		domain.NewSessionRecord("Physics", 50, 5, "", now),
	}
	require.NoError(t, store.Save(records))

	summary := service.Summarize(7, now)

	assert.Equal(t, 7, summary.Days)
	assert.Equal(t, 3, summary.SessionCount)
	assert.Equal(t, 110, summary.TotalMinutes)
	assert.InDelta(t, 13.0/3.0, summary.AverageProductivity, 0.0001)
	assert.Equal(t, "Math", summary.MostStudiedSubject)
	assert.Equal(t, 60, summary.MostStudiedMinutes)
	assert.Equal(t, "Physics", summary.BestSubject)
	assert.InDelta(t, 5.0, summary.BestSubjectAverage, 0.0001)
	assert.Equal(t, 2, summary.SubjectsCovered)
	assert.Equal(t, 2, summary.Streak)
	assert.Equal(t, 0, summary.SkippedRecords)
}

func TestSummarize_EmptyLog(t *testing.T) {
	service := newTestService(t)

	summary := service.Summarize(7, time.Now())

	assert.Equal(t, 0, summary.SessionCount)
	assert.Equal(t, 0, summary.TotalMinutes)
	assert.Equal(t, 0.0, summary.AverageProductivity)
	assert.Empty(t, summary.MostStudiedSubject)
	assert.Empty(t, summary.BestSubject)
	assert.Equal(t, 0, summary.Streak)
}

func TestSummarize_ReportsSkippedRecords(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "study_data.json"))
	service := NewTrackerService(store)
	now := time.Now()
	records := []domain.SessionRecord{
		domain.NewSessionRecord("Math", 30, 3, "", now),
		{Timestamp: "broken", Subject: "Math", Duration: 30, Productivity: 3},
	}
	require.NoError(t, store.Save(records))

	summary := service.Summarize(7, now)

	assert.Equal(t, 1, summary.SessionCount)
	assert.Equal(t, 1, summary.SkippedRecords)
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0 min"},
		{45, "45 min"},
		{60, "1h 0min"},
		{125, "2h 5min"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMinutes(tt.minutes))
		})
	}
}

func TestSessionSavedMessage_IncludesDurationAndSubject(t *testing.T) {
	message := SessionSavedMessage(45, "Algorithms")

	assert.Contains(t, message, "45 minutes")
	assert.Contains(t, message, "Algorithms")
}
