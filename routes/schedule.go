package routes

import (
	"hospital/handlers"
	"hospital/middleware"
	"hospital/models"

	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers availability window endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/api/doctors/:doctorID")
	{
		doctors.Use(middleware.JWTAuthMiddleware())
		doctors.GET("/slots", hb.GetAvailableSlotsHandler)
		doctors.GET("/schedules", hb.ListSchedulesHandler)
		doctors.GET("/schedule-dates", hb.ListScheduledDatesHandler)
		doctors.POST("/schedules/check", hb.CheckScheduleHandler)

		// Ownership of doctorID is checked by the service.
		doctors.POST("/schedules", middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin), hb.CreateScheduleHandler)
		doctors.GET("/appointments", middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin), hb.ListDoctorAppointmentsHandler)
	}

	schedules := r.Group("/api/schedules")
	{
		schedules.Use(middleware.JWTAuthMiddleware())
		schedules.GET("/:id", hb.GetScheduleHandler)

		managed := schedules.Group("")
		managed.Use(middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin))
		managed.PATCH("/:id", hb.UpdateScheduleHandler)
		managed.PUT("/:id/availability", hb.SetAvailabilityHandler)
		managed.DELETE("/:id", hb.DeleteScheduleHandler)
	}
}
