package http

import (
	"github.com/gin-gonic/gin"

	"voice-todo/pkg/response"
)

// Parse godoc
// @Summary     Parse a voice transcript
// @Description Turns one spoken command into a structured task with a confidence score and a decision.
// @Tags        VoiceTasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Transcript and optional RFC3339 reference time"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Transcript too long"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/voice-tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, now, err := h.processParseReq(c)
	if err != nil {
		h.l.Warnf(ctx, "voicetask.delivery.http.Parse: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput(now))
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// ParseBatch godoc
// @Summary     Parse several voice transcripts
// @Description Parses transcripts against one shared reference time. Items keep the request order.
// @Tags        VoiceTasks
// @Accept      json
// @Produce     json
// @Param       body body parseBatchReq true "Transcripts and optional RFC3339 reference time"
// @Success     200  {object} parseBatchResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Batch or transcript too large"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/voice-tasks/parse/batch [POST]
func (h *handler) ParseBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, now, err := h.processParseBatchReq(c)
	if err != nil {
		h.l.Warnf(ctx, "voicetask.delivery.http.ParseBatch: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseBatch(ctx, req.toInput(now))
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseBatch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseBatchResp(output))
}

// Examples godoc
// @Summary     List example commands
// @Description Returns sample voice commands the parser understands.
// @Tags        VoiceTasks
// @Produce     json
// @Success     200 {object} examplesResp
// @Router      /api/v1/voice-tasks/examples [GET]
func (h *handler) Examples(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Examples(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Examples: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newExamplesResp(output))
}
