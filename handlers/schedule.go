package handlers

import (
	"net/http"

	"hospital/models"
	"hospital/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(service schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: service}
}

// CreateScheduleHandler adds an availability window for the doctor in the path.
func (h *ScheduleHandler) CreateScheduleHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	window, err := h.Service.CreateSchedule(c.Request.Context(), actor, c.Param("doctorID"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	getLogger(c).Debug("Schedule created via API", zap.String("scheduleID", window.ID))
	c.JSON(http.StatusCreated, gin.H{"message": "Schedule created", "schedule": window})
}

// CheckScheduleHandler dry-runs the overlap validation for a prospective window.
// ?excludeId= skips the window being edited.
func (h *ScheduleHandler) CheckScheduleHandler(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.Service.CheckSchedule(c.Request.Context(), c.Param("doctorID"), c.Query("excludeId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	window, err := h.Service.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": window})
}

func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req models.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	window, err := h.Service.UpdateSchedule(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule updated", "schedule": window})
}

func (h *ScheduleHandler) SetAvailabilityHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	window, err := h.Service.SetAvailability(c.Request.Context(), actor, c.Param("id"), *req.IsAvailable)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": window})
}

func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteSchedule(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}

// ListSchedulesHandler returns every window of the doctor for ?date=.
func (h *ScheduleHandler) ListSchedulesHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	windows, err := h.Service.ListSchedules(c.Request.Context(), c.Param("doctorID"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": windows})
}

func (h *ScheduleHandler) ListScheduledDatesHandler(c *gin.Context) {
	dates, err := h.Service.ListScheduledDates(c.Request.Context(), c.Param("doctorID"), c.Query("from"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}
