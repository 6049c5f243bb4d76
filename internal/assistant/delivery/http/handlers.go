package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/pkg/response"
)

// Query godoc
// @Summary     Process one utterance
// @Description Runs the utterance through normalize, classify, and route, returning exactly one routing result.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Utterance and context"
// @Success     200  {object} queryResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, classifier.ErrEmptyInput) || errors.Is(err, classifier.ErrUnknownModality) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newQueryResp(output))
}
