package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"studylog/internal/domain"
	"studylog/internal/logging"
	"studylog/internal/services"
)

// EntryFormResult contains the outcome of the log-session form
type EntryFormResult struct {
	Cancelled bool
	Error     error
	Message   string
}

// EntryForm is a Bubble Tea component for logging a new study session.
// Validation happens here, before the store is touched.
type EntryForm struct {
	Completed bool
	form      *huh.Form
	result    EntryFormResult
	tracker   *services.TrackerService

	subject      string
	duration     string
	productivity int
	notes        string
}

// NewEntryForm creates a new session entry form
func NewEntryForm(tracker *services.TrackerService) *EntryForm {
	ef := &EntryForm{
		tracker:      tracker,
		productivity: 3,
	}

	ef.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Value(&ef.subject).
				Validate(func(s string) error {
					_, err := domain.ValidateSubject(s)
					return err
				}),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&ef.duration).
				Validate(func(s string) error {
					minutes, err := strconv.Atoi(s)
					if err != nil {
						return domain.ErrInvalidDuration
					}
					return domain.ValidateDuration(minutes)
				}),
			huh.NewSelect[int]().
				Title("Productivity level").
				Options(
					huh.NewOption(domain.ProductivityLabel(1), 1),
					huh.NewOption(domain.ProductivityLabel(2), 2),
					huh.NewOption(domain.ProductivityLabel(3), 3),
					huh.NewOption(domain.ProductivityLabel(4), 4),
					huh.NewOption(domain.ProductivityLabel(5), 5),
				).
				Value(&ef.productivity),
			huh.NewText().
				Title("Notes (optional)").
				Value(&ef.notes).
				CharLimit(500),
		),
	)

	return ef
}

// Result returns the form outcome once Completed is true
func (ef *EntryForm) Result() EntryFormResult {
	return ef.result
}

func (ef *EntryForm) Init() tea.Cmd {
	return ef.form.Init()
}

func (ef *EntryForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			ef.result.Cancelled = true
			ef.Completed = true
			return ef, nil
		}
	}

	form, cmd := ef.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		ef.form = f
	}

	if ef.form.State == huh.StateCompleted {
		ef.Completed = true
		if err := ef.save(); err != nil {
			logging.Logger.Error("Failed to log session", "error", err)
			ef.result.Error = err
		}
		return ef, nil
	}

	return ef, cmd
}

func (ef *EntryForm) View() string {
	if ef.Completed {
		return ""
	}
	return ef.form.View()
}

// save validates through the tracker and persists the session
func (ef *EntryForm) save() error {
	// The duration field was already validated as an integer
	minutes, err := strconv.Atoi(ef.duration)
	if err != nil {
		return domain.ErrInvalidDuration
	}

	subject, err := domain.ValidateSubject(ef.subject)
	if err != nil {
		return err
	}

	if err := ef.tracker.LogSession(subject, minutes, ef.productivity, ef.notes); err != nil {
		return err
	}

	ef.result.Message = services.SessionSavedMessage(minutes, subject)
	return nil
}
