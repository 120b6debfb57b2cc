// Package analytics computes derived views over a sequence of session
// records. Every function is a pure function of its input: callers load
// the records (usually from the session store) and pass them in
// explicitly. Aggregates have defined zero results for empty input, so
// no empty-checking is needed before calling.
package analytics

import (
	"sort"
	"time"

	"studylog/internal/domain"
)

// Windowed returns the records whose timestamp is within the last
// `days` days relative to now. Records whose timestamp does not parse
// under the canonical format are silently excluded.
func Windowed(records []domain.SessionRecord, days int, now time.Time) []domain.SessionRecord {
	windowed, _ := WindowedCounted(records, days, now)
	return windowed
}

// WindowedCounted is Windowed plus the number of records skipped
// because their timestamp failed to parse, for callers that want to
// report the skips.
func WindowedCounted(records []domain.SessionRecord, days int, now time.Time) ([]domain.SessionRecord, int) {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	windowed := make([]domain.SessionRecord, 0, len(records))
	skipped := 0
	for _, r := range records {
		ts, err := r.Time()
		if err != nil {
			skipped++
			continue
		}
		if !ts.Before(cutoff) {
			windowed = append(windowed, r)
		}
	}
	return windowed, skipped
}

// TotalsBySubject sums duration grouped by subject. Subjects are
// compared for exact equality; trimming happened at record creation.
func TotalsBySubject(records []domain.SessionRecord) map[string]int {
	totals := make(map[string]int)
	for _, r := range records {
		totals[r.Subject] += r.Duration
	}
	return totals
}

// SubjectOrder returns the distinct subjects in first-encountered
// order, which is the deterministic tie-break order for the best-of
// selections below.
func SubjectOrder(records []domain.SessionRecord) []string {
	seen := make(map[string]bool)
	order := make([]string, 0)
	for _, r := range records {
		if !seen[r.Subject] {
			seen[r.Subject] = true
			order = append(order, r.Subject)
		}
	}
	return order
}

// TotalDuration sums all durations; 0 for an empty sequence
func TotalDuration(records []domain.SessionRecord) int {
	total := 0
	for _, r := range records {
		total += r.Duration
	}
	return total
}

// AverageProductivity is the arithmetic mean of productivity scores,
// 0.0 for an empty sequence
func AverageProductivity(records []domain.SessionRecord) float64 {
	if len(records) == 0 {
		return 0.0
	}
	sum := 0
	for _, r := range records {
		sum += r.Productivity
	}
	return float64(sum) / float64(len(records))
}

// MostStudied returns the subject with the largest total duration and
// that total. Ties go to the subject encountered first in record
// order. ok is false when the input is empty.
func MostStudied(records []domain.SessionRecord) (subject string, minutes int, ok bool) {
	totals := TotalsBySubject(records)
	for _, s := range SubjectOrder(records) {
		if !ok || totals[s] > minutes {
			subject, minutes, ok = s, totals[s], true
		}
	}
	return subject, minutes, ok
}

// SessionCount returns the number of records
func SessionCount(records []domain.SessionRecord) int {
	return len(records)
}

// BestProductivitySubject returns the subject with the highest mean
// productivity across its sessions and that mean. Ties go to the
// subject encountered first. Returns ("", 0.0) for empty input.
func BestProductivitySubject(records []domain.SessionRecord) (string, float64) {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range records {
		sums[r.Subject] += r.Productivity
		counts[r.Subject]++
	}

	best := ""
	bestAvg := 0.0
	for _, s := range SubjectOrder(records) {
		avg := float64(sums[s]) / float64(counts[s])
		if best == "" || avg > bestAvg {
			best, bestAvg = s, avg
		}
	}
	return best, bestAvg
}

// StudyStreak counts consecutive calendar days with at least one
// session, walking backward from today. The streak is 0 unless the
// most recent study day is today or yesterday; it extends across
// adjacent days and stops at the first gap. Unparseable timestamps
// are skipped.
func StudyStreak(records []domain.SessionRecord, today time.Time) int {
	daySet := make(map[time.Time]struct{})
	for _, r := range records {
		ts, err := r.Time()
		if err != nil {
			continue
		}
		daySet[dateOf(ts)] = struct{}{}
	}
	if len(daySet) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	todayDate := dateOf(today)
	yesterday := todayDate.AddDate(0, 0, -1)
	if !days[0].Equal(todayDate) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			break
		}
		streak++
	}
	return streak
}

// dateOf truncates a time to its calendar day
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
