package handlers

import (
	"net/http"

	"keshwala/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last backend health snapshot.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := monitor.GetHealthStatus()
		code := http.StatusOK
		state := "ok"
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(code, gin.H{"status": state, "message": "Hi, I'm Keshwala", "backends": status})
	}
}
