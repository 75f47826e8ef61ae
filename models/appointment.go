package models

import "time"

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// IsTerminal reports whether no further status change is allowed.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether an appointment may move from s to next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCompleted || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// BookedAppointment is a patient appointment occupying one slot start time.
type BookedAppointment struct {
	ID          string            `bson:"id" json:"id"`                             // Unique appointment identifier (UUID)
	DoctorID    string            `bson:"doctorId" json:"doctorId"`                 // Matched to windows by exact ID only
	PatientID   string            `bson:"patientId" json:"patientId"`               // Patient who holds the appointment
	PatientName string            `bson:"patientName" json:"patientName"`           // Display name captured at booking
	Date        string            `bson:"date" json:"date"`                         // "YYYY-MM-DD"
	Time        string            `bson:"time" json:"time"`                         // "HH:MM" slot start
	Reason      string            `bson:"reason,omitempty" json:"reason,omitempty"` // Free-text reason for the visit
	Status      AppointmentStatus `bson:"status" json:"status"`
	Active      bool              `bson:"active" json:"-"` // status != Cancelled; backs the unique slot index
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// BookAppointmentRequest is the payload for booking a slot.
type BookAppointmentRequest struct {
	DoctorID    string `json:"doctorId" binding:"required"`
	PatientID   string `json:"patientId" binding:"required"`
	PatientName string `json:"patientName" binding:"max=120"`
	Date        string `json:"date" binding:"required,date"`
	Time        string `json:"time" binding:"required,clock"`
	Reason      string `json:"reason" binding:"max=500"`
}

type StatusUpdateRequest struct {
	Status AppointmentStatus `json:"status" binding:"required,oneof=Pending Confirmed Completed Cancelled"`
}
