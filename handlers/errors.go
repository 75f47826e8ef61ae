package handlers

import (
	"errors"
	"net/http"

	"hospital/services/appointment"
	"hospital/services/schedule"
	"hospital/services/scheduling"
	"hospital/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses and the standard error body.
func respondError(c *gin.Context, err error) {
	var conflict *scheduling.ConflictError
	switch {
	case errors.As(err, &conflict):
		getLogger(c).Info("Schedule conflict", zap.String("conflictingWindowId", conflict.WindowID))
		c.JSON(http.StatusConflict, gin.H{
			"error":               "Schedule conflict",
			"message":             err.Error(),
			"conflictingWindowId": conflict.WindowID,
		})
	case errors.Is(err, scheduling.ErrInvalidRange),
		errors.Is(err, scheduling.ErrInvalidTimeFormat),
		errors.Is(err, scheduling.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
	case errors.Is(err, schedule.ErrScheduleNotFound),
		errors.Is(err, appointment.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, appointment.ErrSlotUnavailable),
		errors.Is(err, schedule.ErrScheduleInUse),
		errors.Is(err, appointment.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict", "message": err.Error()})
	case errors.Is(err, utils.ErrLockNotAcquired):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Schedule is busy, retry shortly"})
	default:
		getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func bindError(c *gin.Context, err error) {
	getLogger(c).Debug("Invalid request payload", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
}
