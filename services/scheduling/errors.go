package scheduling

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange      = errors.New("start time must be before end time")
	ErrScheduleConflict  = errors.New("schedule overlaps an existing window")
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
)

// TimeFormatError reports a time string that is not a zero-padded 24h HH:MM[:SS].
type TimeFormatError struct {
	Value string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("invalid time %q: expected zero-padded HH:MM", e.Value)
}

func (e *TimeFormatError) Unwrap() error {
	return ErrInvalidTimeFormat
}

// ConflictError identifies the active window a candidate overlaps.
type ConflictError struct {
	WindowID  string
	StartTime string
	EndTime   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule overlaps window %s (%s - %s)", e.WindowID, e.StartTime, e.EndTime)
}

func (e *ConflictError) Unwrap() error {
	return ErrScheduleConflict
}
