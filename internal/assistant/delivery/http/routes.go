package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/query", h.Query)
	}
}
