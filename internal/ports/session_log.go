package ports

import "studylog/internal/domain"

// SessionLogReader reads the persisted session log.
// Load never fails: an absent or unreadable log degrades to an empty
// sequence, so callers can compute statistics without ceremony.
type SessionLogReader interface {
	Load() []domain.SessionRecord
}

// SessionLogWriter appends to and replaces the persisted session log
type SessionLogWriter interface {
	Save(records []domain.SessionRecord) error
	AddSession(subject string, duration, productivity int, notes string) error
	ClearAll() error
}

// SessionLogExporter serializes the log to other formats
type SessionLogExporter interface {
	ExportCSV(dest string) (string, error)
}

// SessionLog is the composite interface
type SessionLog interface {
	SessionLogReader
	SessionLogWriter
	SessionLogExporter
}
