package services

// SubjectTotal is one row of the per-subject time distribution
type SubjectTotal struct {
	Subject string
	Minutes int
}

// Summary aggregates the windowed view of the log for display.
// Window fields cover the last Days days; Streak always looks at the
// whole log since the current streak ends today regardless of window.
type Summary struct {
	Days                int
	SessionCount        int
	TotalMinutes        int
	AverageProductivity float64
	MostStudiedSubject  string
	MostStudiedMinutes  int
	BestSubject         string
	BestSubjectAverage  float64
	SubjectsCovered     int
	Streak              int
	SkippedRecords      int
}
