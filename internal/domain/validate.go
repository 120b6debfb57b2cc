package domain

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for session input. The store trusts its callers;
// these checks belong to whatever layer accepts user input.
const (
	MaxSubjectLength = 100
	MinDuration      = 1
	MaxDuration      = 1440
	MinProductivity  = 1
	MaxProductivity  = 5
)

// ValidateSubject trims the subject and checks it is non-empty and
// within the length limit. Returns the trimmed subject; records are
// always created with the trimmed form.
func ValidateSubject(subject string) (string, error) {
	trimmed := strings.TrimSpace(subject)
	if trimmed == "" {
		return "", ErrEmptySubject
	}
	if utf8.RuneCountInString(trimmed) > MaxSubjectLength {
		return "", ErrSubjectTooLong
	}
	return trimmed, nil
}

// ValidateDuration checks the duration is within 1..1440 minutes
func ValidateDuration(minutes int) error {
	if minutes < MinDuration || minutes > MaxDuration {
		return ErrInvalidDuration
	}
	return nil
}

// ValidateProductivity checks the score is within 1..5
func ValidateProductivity(score int) error {
	if score < MinProductivity || score > MaxProductivity {
		return ErrInvalidProductivity
	}
	return nil
}
