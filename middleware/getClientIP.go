package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// getClientIP keys the rate limiter. X-Forwarded-For and X-Real-IP are only
// honoured when the direct peer is one of the engine's trusted proxies, so a
// client cannot mint a fresh bucket per request by rewriting the header.
func getClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	// Fallback: use the remote address, stripping the port if present.
	ip := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	return ip
}
