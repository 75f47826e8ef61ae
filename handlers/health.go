package handlers

import (
	"net/http"

	"hospital/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency snapshot taken by the health monitor.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "dependencies": status})
}
