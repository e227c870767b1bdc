package httpserver

import (
	"voice-todo/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "Voice to-do parser is listening"
	HealthVersion = "1.0.0"
	ServiceName   = "voice-todo"
)

// healthStatus is the payload shared by the probe routes. timezone is the zone that decides "today"
// when a request carries no reference time.
func (srv HTTPServer) healthStatus(status string) gin.H {
	return gin.H{
		"status":      status,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
		"timezone":    srv.timezone,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Service identity and the parser's reference timezone
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.healthStatus("healthy"))
}

// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.healthStatus("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.healthStatus("alive"))
}
