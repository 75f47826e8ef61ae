package models

import "time"

// AvailabilityWindow is a doctor-declared span of bookable time on one calendar day.
type AvailabilityWindow struct {
	ID                  string    `bson:"id" json:"id"`                                   // Unique window identifier (UUID)
	DoctorID            string    `bson:"doctorId" json:"doctorId"`                       // Owning doctor
	Date                string    `bson:"date" json:"date"`                               // e.g., "2025-02-25"
	StartTime           string    `bson:"startTime" json:"startTime"`                     // "HH:MM", 24h
	EndTime             string    `bson:"endTime" json:"endTime"`                         // "HH:MM", 24h, after StartTime
	SlotDurationMinutes int       `bson:"slotDurationMinutes" json:"slotDurationMinutes"` // size of bookable slices
	IsAvailable         bool      `bson:"isAvailable" json:"isAvailable"`                 // false soft-disables without deleting
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleRequest is the payload for creating a window.
type ScheduleRequest struct {
	Date                string `json:"date" binding:"required,date"`
	StartTime           string `json:"startTime" binding:"required,clock"`
	EndTime             string `json:"endTime" binding:"required,clock"`
	SlotDurationMinutes int    `json:"slotDurationMinutes" binding:"omitempty,min=5,max=240"`
	IsAvailable         *bool  `json:"isAvailable"`
}

// ScheduleUpdateRequest is a partial update; nil fields are left untouched.
type ScheduleUpdateRequest struct {
	Date                *string `json:"date" binding:"omitempty,date"`
	StartTime           *string `json:"startTime" binding:"omitempty,clock"`
	EndTime             *string `json:"endTime" binding:"omitempty,clock"`
	SlotDurationMinutes *int    `json:"slotDurationMinutes" binding:"omitempty,min=5,max=240"`
	IsAvailable         *bool   `json:"isAvailable"`
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}
