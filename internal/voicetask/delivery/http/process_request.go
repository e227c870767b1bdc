package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voice-todo/internal/voicetask"
)

// processParseReq binds the parse request body and resolves the optional reference time.
func (h *handler) processParseReq(c *gin.Context) (parseReq, time.Time, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, err
	}
	now, err := parseReferenceTime(req.Now)
	return req, now, err
}

// processParseBatchReq binds the batch request body and resolves the optional reference time.
func (h *handler) processParseBatchReq(c *gin.Context) (parseBatchReq, time.Time, error) {
	var req parseBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, err
	}
	now, err := parseReferenceTime(req.Now)
	return req, now, err
}

// parseReferenceTime accepts RFC3339; an empty string means the service clock.
func parseReferenceTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not RFC3339", voicetask.ErrInvalidReferenceTime, s)
	}
	return t, nil
}
