package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"golf-caddy-core/config"
	"golf-caddy-core/internal/assistant"
	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/pkg/log"
	"golf-caddy-core/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Observability
	metrics *metrics.Metrics

	// Domains
	assistantUC assistant.UseCase
	patternUC   pattern.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	Metrics *metrics.Metrics

	AssistantUC assistant.UseCase
	PatternUC   pattern.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		metrics:     cfg.Metrics,
		assistantUC: cfg.AssistantUC,
		patternUC:   cfg.PatternUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.metrics == nil {
		return errors.New("metrics are required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant use case is required")
	}
	if srv.patternUC == nil {
		return errors.New("pattern use case is required")
	}
	return nil
}
