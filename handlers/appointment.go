package handlers

import (
	"net/http"

	"hospital/models"
	"hospital/services/appointment"

	"github.com/gin-gonic/gin"
)

const noAvailableTimesMessage = "No available times"

type AppointmentHandler struct {
	Service appointment.AppointmentService
}

func NewAppointmentHandler(service appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: service}
}

// GetAvailableSlotsHandler returns the doctor's free slots for ?date=.
// An empty day is a 200 with an empty list and a hint message.
func (h *AppointmentHandler) GetAvailableSlotsHandler(c *gin.Context) {
	doctorID := c.Param("doctorID")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	slots, err := h.Service.GetAvailableSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.AvailableSlotsResponse{DoctorID: doctorID, Date: date, Slots: slots}
	if len(slots) == 0 {
		resp.Slots = []models.Slot{}
		resp.Message = noAvailableTimesMessage
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	appt, err := h.Service.BookAppointment(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Appointment booked", "appointment": appt})
}

func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	appt, err := h.Service.GetAppointment(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	appt, err := h.Service.CancelAppointment(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled", "appointment": appt})
}

func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	appt, err := h.Service.UpdateStatus(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// ListDoctorAppointmentsHandler lists a doctor's appointments, optionally for one ?date=.
func (h *AppointmentHandler) ListDoctorAppointmentsHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	appts, err := h.Service.ListDoctorAppointments(c.Request.Context(), actor, c.Param("doctorID"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) ListPatientAppointmentsHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	appts, err := h.Service.ListPatientAppointments(c.Request.Context(), actor, c.Param("patientID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
