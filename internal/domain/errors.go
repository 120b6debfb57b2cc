package domain

import "errors"

var (
	ErrEmptySubject        = errors.New("subject must not be empty")
	ErrSubjectTooLong      = errors.New("subject must be 100 characters or fewer")
	ErrInvalidDuration     = errors.New("duration must be between 1 and 1440 minutes")
	ErrInvalidProductivity = errors.New("productivity must be between 1 and 5")
	ErrNoSessions          = errors.New("no study sessions recorded")
)
