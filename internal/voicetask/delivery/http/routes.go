package http

import (
	"github.com/gin-gonic/gin"

	"voice-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Parse routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.RateLimit(), h.Parse)
	rg.POST("/parse/batch", mw.RateLimit(), h.ParseBatch)
	rg.GET("/examples", h.Examples)
}
