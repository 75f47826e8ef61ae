package handlers

import (
	"net/http"

	"hospital/models"
	"hospital/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// actorFromContext returns the caller set by JWTAuthMiddleware, writing a 401 when absent.
func actorFromContext(c *gin.Context) (models.Actor, bool) {
	actor := models.Actor{ID: c.GetString("userID"), Role: c.GetString("role")}
	if actor.ID == "" || actor.Role == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "missing user or role on request context")
		return models.Actor{}, false
	}
	return actor, true
}
