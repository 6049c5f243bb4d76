package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "golf-caddy-core/internal/assistant/delivery/http"
	patternHTTP "golf-caddy-core/internal/pattern/delivery/http"
)

// setupAssistantDomain registers the assistant query route.
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Assistant domain registered")
}

// setupPatternDomain registers the shot log and pattern routes.
func (srv *HTTPServer) setupPatternDomain(ctx context.Context, api *gin.RouterGroup) {
	h := patternHTTP.New(srv.l, srv.patternUC)
	patternHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Pattern domain registered")
}
