package routes

import (
	"hospital/handlers"
	"hospital/middleware"
	"hospital/models"

	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes sets up the booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	appointments := r.Group("/api/appointments")
	{
		appointments.Use(middleware.JWTAuthMiddleware())
		appointments.POST("", hb.BookAppointmentHandler)
		appointments.GET("/:id", hb.GetAppointmentHandler)
		appointments.PUT("/:id/cancel", hb.CancelAppointmentHandler)
		appointments.PUT("/:id/status", middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin), hb.UpdateAppointmentStatusHandler)
	}

	patients := r.Group("/api/patients")
	{
		patients.Use(middleware.JWTAuthMiddleware())
		patients.GET("/:patientID/appointments", hb.ListPatientAppointmentsHandler)
	}
}
