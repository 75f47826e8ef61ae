package scheduling

import (
	"errors"
	"fmt"

	"hospital/models"
)

// Validation is the outcome of CheckWindow.
type Validation struct {
	OK                  bool   `json:"ok"`
	ConflictingWindowID string `json:"conflictingWindowId,omitempty"`
	Reason              string `json:"reason,omitempty"`
}

// ValidateWindow checks a candidate window against the doctor's existing windows.
// Only active windows with the same doctor and date are compared; the window with
// ID excludeID is skipped so updates do not conflict with themselves. An inactive
// candidate is only range-checked.
func ValidateWindow(candidate models.AvailabilityWindow, existing []models.AvailabilityWindow, excludeID string) error {
	if _, err := ParseDate(candidate.Date); err != nil {
		return err
	}
	cand, err := ParseRange(candidate.StartTime, candidate.EndTime)
	if err != nil {
		return err
	}
	if !candidate.IsAvailable {
		return nil
	}

	for _, w := range existing {
		if excludeID != "" && w.ID == excludeID {
			continue
		}
		if !w.IsAvailable || w.DoctorID != candidate.DoctorID || w.Date != candidate.Date {
			continue
		}
		other, err := ParseRange(w.StartTime, w.EndTime)
		if err != nil {
			return fmt.Errorf("window %s: %w", w.ID, err)
		}
		if cand.Overlaps(other) {
			return &ConflictError{
				WindowID:  w.ID,
				StartTime: other.Start.String(),
				EndTime:   other.End.String(),
			}
		}
	}
	return nil
}

// CheckWindow is ValidateWindow reported as a result value instead of an error.
func CheckWindow(candidate models.AvailabilityWindow, existing []models.AvailabilityWindow, excludeID string) Validation {
	err := ValidateWindow(candidate, existing, excludeID)
	if err == nil {
		return Validation{OK: true}
	}
	v := Validation{Reason: err.Error()}
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		v.ConflictingWindowID = conflict.WindowID
	}
	return v
}
