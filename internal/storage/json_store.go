package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"studylog/internal/config"
	"studylog/internal/domain"
	"studylog/internal/logging"
)

// csvHeader is the fixed column order of CSV exports
var csvHeader = []string{"timestamp", "subject", "duration", "productivity", "notes"}

// JSONStore persists the session log as a single pretty-printed JSON
// array so the file stays inspectable in any text editor.
//
// The store is single-writer by design: it is driven by direct user
// action from one process, so there is no locking and no transaction
// beyond the atomic whole-file replace in Save. It also performs no
// validation; callers validate input before a record is constructed.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the given file path.
// An empty path selects the default $STUDYLOG_HOME/study_data.json.
// The containing directory is created if absent.
func NewJSONStore(path string) *JSONStore {
	if path == "" {
		path = config.GetDataPath()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logging.Logger.Warn("Failed to create data directory", "dir", dir, "error", err)
		}
	}
	return &JSONStore{path: path}
}

// Path returns the location of the data file
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the persisted log. An absent file means "no data yet" and
// yields an empty slice. A file that exists but cannot be read or
// parsed is logged and also degrades to an empty slice; the previous
// content is left untouched for manual inspection.
func (s *JSONStore) Load() []domain.SessionRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read data file", "path", s.path, "error", err)
		}
		return []domain.SessionRecord{}
	}

	var records []domain.SessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logging.Logger.Warn("Data file is corrupt, treating as empty", "path", s.path, "error", err)
		return []domain.SessionRecord{}
	}
	if records == nil {
		records = []domain.SessionRecord{}
	}
	return records
}

// Save atomically replaces the persisted log with the given records.
// The new content is written to a temp file in the same directory and
// renamed over the old one, so readers never observe a partial write.
func (s *JSONStore) Save(records []domain.SessionRecord) error {
	if records == nil {
		records = []domain.SessionRecord{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".study_data-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write sessions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	logging.Logger.Debug("Session log saved", "path", s.path, "records", len(records))
	return nil
}

// AddSession stamps the current time, appends a record to the log, and
// persists the whole log back. Inputs are trusted as-is.
func (s *JSONStore) AddSession(subject string, duration, productivity int, notes string) error {
	record := domain.NewSessionRecord(subject, duration, productivity, notes, time.Now())
	records := append(s.Load(), record)
	return s.Save(records)
}

// ClearAll deletes the persisted log entirely. Clearing an already
// absent store succeeds.
func (s *JSONStore) ClearAll() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear data file: %w", err)
	}
	logging.Logger.Info("Session log cleared", "path", s.path)
	return nil
}

// ExportCSV writes the current log to a CSV file, oldest first, and
// returns the destination path. An empty dest selects the default
// sibling of the data file. Exporting an empty log returns
// domain.ErrNoSessions and writes nothing.
func (s *JSONStore) ExportCSV(dest string) (string, error) {
	records := s.Load()
	if len(records) == 0 {
		return "", domain.ErrNoSessions
	}

	if dest == "" {
		dest = filepath.Join(filepath.Dir(s.path), "study_data.csv")
	}
	if dir := filepath.Dir(dest); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Timestamp,
			r.Subject,
			strconv.Itoa(r.Duration),
			strconv.Itoa(r.Productivity),
			r.Notes,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	abs, err := filepath.Abs(dest)
	if err != nil {
		abs = dest
	}
	logging.Logger.Info("Sessions exported", "path", abs, "records", len(records))
	return abs, nil
}
