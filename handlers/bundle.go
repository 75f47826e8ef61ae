// File: hospital/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Health
	HealthHandler gin.HandlerFunc

	// Schedule endpoints
	CreateScheduleHandler     gin.HandlerFunc
	CheckScheduleHandler      gin.HandlerFunc
	GetScheduleHandler        gin.HandlerFunc
	UpdateScheduleHandler     gin.HandlerFunc
	SetAvailabilityHandler    gin.HandlerFunc
	DeleteScheduleHandler     gin.HandlerFunc
	ListSchedulesHandler      gin.HandlerFunc
	ListScheduledDatesHandler gin.HandlerFunc

	// Appointment endpoints
	GetAvailableSlotsHandler       gin.HandlerFunc
	BookAppointmentHandler         gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	CancelAppointmentHandler       gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
	ListDoctorAppointmentsHandler  gin.HandlerFunc
	ListPatientAppointmentsHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler methods into a bundle.
func NewHandlerBundle(sh *ScheduleHandler, ah *AppointmentHandler) *HandlerBundle {
	return &HandlerBundle{
		HealthHandler: HealthHandler,

		CreateScheduleHandler:     sh.CreateScheduleHandler,
		CheckScheduleHandler:      sh.CheckScheduleHandler,
		GetScheduleHandler:        sh.GetScheduleHandler,
		UpdateScheduleHandler:     sh.UpdateScheduleHandler,
		SetAvailabilityHandler:    sh.SetAvailabilityHandler,
		DeleteScheduleHandler:     sh.DeleteScheduleHandler,
		ListSchedulesHandler:      sh.ListSchedulesHandler,
		ListScheduledDatesHandler: sh.ListScheduledDatesHandler,

		GetAvailableSlotsHandler:       ah.GetAvailableSlotsHandler,
		BookAppointmentHandler:         ah.BookAppointmentHandler,
		GetAppointmentHandler:          ah.GetAppointmentHandler,
		CancelAppointmentHandler:       ah.CancelAppointmentHandler,
		UpdateAppointmentStatusHandler: ah.UpdateStatusHandler,
		ListDoctorAppointmentsHandler:  ah.ListDoctorAppointmentsHandler,
		ListPatientAppointmentsHandler: ah.ListPatientAppointmentsHandler,
	}
}
