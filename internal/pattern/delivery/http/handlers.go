package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/pkg/response"
)

// LogShot godoc
// @Summary     Log a miss event
// @Description Appends one shot miss to the pattern memory. Timestamp defaults to now.
// @Tags        Patterns
// @Accept      json
// @Produce     json
// @Param       body body logShotReq true "Miss event"
// @Success     200  {object} logShotResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/shots [POST]
func (h *handler) LogShot(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLogShotReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	event, err := h.uc.Record(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, pattern.ErrInvalidDirection) || errors.Is(err, pattern.ErrFutureEvent) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Record: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newLogShotResp(event))
}

// ListPatterns godoc
// @Summary     List miss patterns
// @Description Aggregates stored events live and returns the decayed, floored patterns.
// @Tags        Patterns
// @Accept      json
// @Produce     json
// @Param       club          query string false "Restrict to one club"
// @Param       pressure_only query bool   false "Restrict to pressure shots"
// @Success     200 {object} patternsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/patterns [GET]
func (h *handler) ListPatterns(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPatternsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	patterns, err := h.uc.Patterns(ctx, req.toFilter(), time.Now().UTC())
	if err != nil {
		h.l.Errorf(ctx, "uc.Patterns: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newPatternsResp(patterns))
}

// RefreshPatterns godoc
// @Summary     Rebuild the materialized pattern view
// @Description Re-aggregates and replaces the stored patterns for the given filter wholesale.
// @Tags        Patterns
// @Accept      json
// @Produce     json
// @Param       club          query string false "Restrict to one club"
// @Param       pressure_only query bool   false "Restrict to pressure shots"
// @Success     200 {object} patternsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/patterns/refresh [POST]
func (h *handler) RefreshPatterns(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPatternsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	patterns, err := h.uc.Refresh(ctx, req.toFilter(), time.Now().UTC())
	if err != nil {
		h.l.Errorf(ctx, "uc.Refresh: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newPatternsResp(patterns))
}
