package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital/models"
)

func window(id, start, end string) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		ID:          id,
		DoctorID:    "doc-1",
		Date:        "2025-03-01",
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
}

func TestValidateWindowBoundaryIsNotConflict(t *testing.T) {
	existing := []models.AvailabilityWindow{window("w1", "09:00", "10:00")}

	assert.NoError(t, ValidateWindow(window("", "10:00", "11:00"), existing, ""))
	assert.NoError(t, ValidateWindow(window("", "08:00", "09:00"), existing, ""))
}

func TestValidateWindowDetectsOverlap(t *testing.T) {
	existing := []models.AvailabilityWindow{window("w1", "08:00", "12:00")}

	cases := [][2]string{
		{"11:00", "13:00"}, // starts inside
		{"07:00", "09:00"}, // ends inside
		{"07:00", "13:00"}, // encloses
		{"09:00", "10:00"}, // inside
		{"08:00", "12:00"}, // identical
	}
	for _, c := range cases {
		err := ValidateWindow(window("", c[0], c[1]), existing, "")
		require.ErrorIs(t, err, ErrScheduleConflict, c)

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "w1", conflict.WindowID)
		assert.Equal(t, "08:00", conflict.StartTime)
	}
}

func TestValidateWindowIgnoresOtherDoctorsDatesAndInactive(t *testing.T) {
	otherDoctor := window("w1", "09:00", "10:00")
	otherDoctor.DoctorID = "doc-2"
	otherDate := window("w2", "09:00", "10:00")
	otherDate.Date = "2025-03-02"
	inactive := window("w3", "09:00", "10:00")
	inactive.IsAvailable = false

	err := ValidateWindow(window("", "09:00", "10:00"), []models.AvailabilityWindow{otherDoctor, otherDate, inactive}, "")
	assert.NoError(t, err)
}

func TestValidateWindowExcludesSelfOnUpdate(t *testing.T) {
	existing := []models.AvailabilityWindow{window("w1", "09:00", "10:00"), window("w2", "10:00", "11:00")}

	assert.NoError(t, ValidateWindow(window("w1", "09:00", "09:45"), existing, "w1"))

	err := ValidateWindow(window("w1", "09:00", "10:30"), existing, "w1")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "w2", conflict.WindowID)
}

func TestValidateWindowInvalidInput(t *testing.T) {
	assert.ErrorIs(t, ValidateWindow(window("", "10:00", "09:00"), nil, ""), ErrInvalidRange)
	assert.ErrorIs(t, ValidateWindow(window("", "10:00", "10:00"), nil, ""), ErrInvalidRange)
	assert.ErrorIs(t, ValidateWindow(window("", "9:00", "10:00"), nil, ""), ErrInvalidTimeFormat)

	badDate := window("", "09:00", "10:00")
	badDate.Date = "01-03-2025"
	assert.ErrorIs(t, ValidateWindow(badDate, nil, ""), ErrInvalidDate)
}

func TestValidateWindowInactiveCandidateSkipsConflicts(t *testing.T) {
	existing := []models.AvailabilityWindow{window("w1", "09:00", "10:00")}
	candidate := window("", "09:00", "10:00")
	candidate.IsAvailable = false

	assert.NoError(t, ValidateWindow(candidate, existing, ""))
}

func TestCheckWindow(t *testing.T) {
	existing := []models.AvailabilityWindow{window("w1", "08:00", "12:00")}

	ok := CheckWindow(window("", "12:00", "13:00"), existing, "")
	assert.Equal(t, Validation{OK: true}, ok)

	bad := CheckWindow(window("", "11:00", "13:00"), existing, "")
	assert.False(t, bad.OK)
	assert.Equal(t, "w1", bad.ConflictingWindowID)
	assert.Contains(t, bad.Reason, "overlaps")
}
