package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	voiceTaskHTTP "voice-todo/internal/voicetask/delivery/http"
)

// setupVoiceTaskDomain registers /api/v1/voice-tasks.
func (srv HTTPServer) setupVoiceTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := voiceTaskHTTP.New(srv.l, srv.voiceTaskUC)
	voiceTaskHTTP.RegisterRoutes(api.Group("/voice-tasks"), h, srv.mw)

	srv.l.Infof(ctx, "Voice task domain registered")
	return nil
}
