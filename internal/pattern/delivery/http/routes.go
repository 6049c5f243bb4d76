package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/shots", h.LogShot)

	patterns := rg.Group("/patterns")
	{
		patterns.GET("", h.ListPatterns)
		patterns.POST("/refresh", h.RefreshPatterns)
	}
}
