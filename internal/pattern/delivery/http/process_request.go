package http

import (
	"github.com/gin-gonic/gin"
)

// processLogShotReq binds and validates the shot log request body.
func (h *handler) processLogShotReq(c *gin.Context) (logShotReq, error) {
	var req logShotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processPatternsReq binds the pattern filter query parameters.
func (h *handler) processPatternsReq(c *gin.Context) (patternsReq, error) {
	var req patternsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
