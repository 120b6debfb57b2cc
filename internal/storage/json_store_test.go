package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studylog/internal/domain"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "study_data.json"))
}

func sampleRecords() []domain.SessionRecord {
	return []domain.SessionRecord{
		{Timestamp: "2024-01-15 09:30:00", Subject: "Algorithms", Duration: 45, Productivity: 4, Notes: "Reviewed sorting"},
		{Timestamp: "2024-01-15 14:00:00", Subject: "Physics", Duration: 60, Productivity: 3, Notes: ""},
		{Timestamp: "2024-01-16 08:15:00", Subject: "Algorithms", Duration: 30, Productivity: 5, Notes: "Graphs"},
	}
}

func TestLoad_MissingFileIsEmptyLog(t *testing.T) {
	store := newTestStore(t)

	records := store.Load()

	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSaveLoad_RoundTripPreservesOrder(t *testing.T) {
	store := newTestStore(t)
	saved := sampleRecords()

	require.NoError(t, store.Save(saved))
	loaded := store.Load()

	assert.Equal(t, saved, loaded)
}

func TestSave_WritesPrettyPrintedArray(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleRecords()[:1]))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	expected := `[
    {
        "timestamp": "2024-01-15 09:30:00",
        "subject": "Algorithms",
        "duration": 45,
        "productivity": 4,
        "notes": "Reviewed sorting"
    }
]`
	assert.Equal(t, expected, string(data))
}

func TestSave_NilRecordsWritesEmptyArray(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(nil))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSave_CreatesMissingDirectory(t *testing.T) {
	base := t.TempDir()
	store := NewJSONStore(filepath.Join(base, "nested", "deeper", "study_data.json"))

	require.NoError(t, store.Save(sampleRecords()))

	assert.Len(t, store.Load(), 3)
}

func TestLoad_CorruptFileDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid syntax", "{not valid json"},
		{"wrong shape", `{"timestamp": "2024-01-15 09:30:00"}`},
		{"truncated array", `[{"subject": "Math"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.content), 0644))

			records := store.Load()

			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestAddSession_AppendsStampedRecord(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleRecords()))

	before := time.Now()
	require.NoError(t, store.AddSession("Chemistry", 25, 2, "flashcards"))

	records := store.Load()
	require.Len(t, records, 4)

	added := records[3]
	assert.Equal(t, "Chemistry", added.Subject)
	assert.Equal(t, 25, added.Duration)
	assert.Equal(t, 2, added.Productivity)
	assert.Equal(t, "flashcards", added.Notes)

	stamped, err := added.Time()
	require.NoError(t, err)
	assert.WithinDuration(t, before, stamped, 2*time.Second)
}

func TestAddSession_OnEmptyStoreCreatesLog(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddSession("Math", 30, 3, ""))

	assert.Len(t, store.Load(), 1)
}

func TestClearAll_RemovesDataFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleRecords()))

	require.NoError(t, store.ClearAll())

	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, store.Load())
}

func TestClearAll_IsIdempotent(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.ClearAll())
	assert.NoError(t, store.ClearAll())
}

func TestExportCSV_SingleRecord(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleRecords()[:1]))

	dest := filepath.Join(t.TempDir(), "out.csv")
	path, err := store.ExportCSV(dest)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "timestamp,subject,duration,productivity,notes", lines[0])
	assert.Equal(t, "2024-01-15 09:30:00,Algorithms,45,4,Reviewed sorting", lines[1])
}

func TestExportCSV_QuotesFieldsWithCommasAndNewlines(t *testing.T) {
	store := newTestStore(t)
	records := []domain.SessionRecord{
		{Timestamp: "2024-01-15 09:30:00", Subject: "Math, advanced", Duration: 45, Productivity: 4, Notes: "line one\nline two"},
	}
	require.NoError(t, store.Save(records))

	path, err := store.ExportCSV(filepath.Join(t.TempDir(), "out.csv"))
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Math, advanced", rows[1][1])
	assert.Equal(t, "line one\nline two", rows[1][4])
}

func TestExportCSV_EmptyLogReturnsErrNoSessions(t *testing.T) {
	store := newTestStore(t)

	path, err := store.ExportCSV("")

	assert.ErrorIs(t, err, domain.ErrNoSessions)
	assert.Empty(t, path)
}

func TestExportCSV_DefaultDestinationIsSiblingOfDataFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleRecords()))

	path, err := store.ExportCSV("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(store.Path()), "study_data.csv"), path)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestExportCSV_RowsInStoredOrder(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleRecords()))

	path, err := store.ExportCSV(filepath.Join(t.TempDir(), "out.csv"))
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, readErr := csv.NewReader(f).ReadAll()
	require.NoError(t, readErr)
	require.Len(t, rows, 4)
	assert.Equal(t, "2024-01-15 09:30:00", rows[1][0])
	assert.Equal(t, "2024-01-15 14:00:00", rows[2][0])
	assert.Equal(t, "2024-01-16 08:15:00", rows[3][0])
}
