package domain

import "time"

// TimestampFormat is the canonical textual form of a session timestamp,
// second precision, as persisted in the data file.
const TimestampFormat = "2006-01-02 15:04:05"

// SessionRecord represents one logged study event (domain entity).
// Records are immutable once appended to the log; the whole log is
// replaced on every write. Field order matches the persisted JSON
// object layout.
type SessionRecord struct {
	Timestamp    string `json:"timestamp"`
	Subject      string `json:"subject"`
	Duration     int    `json:"duration"`
	Productivity int    `json:"productivity"`
	Notes        string `json:"notes"`
}

// NewSessionRecord builds a record stamped with the given creation time.
// Inputs are assumed to be validated already (see Validate* functions);
// the record itself performs no checks.
func NewSessionRecord(subject string, duration, productivity int, notes string, now time.Time) SessionRecord {
	return SessionRecord{
		Timestamp:    now.Format(TimestampFormat),
		Subject:      subject,
		Duration:     duration,
		Productivity: productivity,
		Notes:        notes,
	}
}

// Time parses the record timestamp in the canonical format.
func (r SessionRecord) Time() (time.Time, error) {
	return time.ParseInLocation(TimestampFormat, r.Timestamp, time.Local)
}

// ProductivityLabel returns the display label for a productivity score
func ProductivityLabel(score int) string {
	switch score {
	case 1:
		return "1 - Very Low"
	case 2:
		return "2 - Low"
	case 3:
		return "3 - Good"
	case 4:
		return "4 - High"
	case 5:
		return "5 - Excellent"
	default:
		return "3 - Good"
	}
}
