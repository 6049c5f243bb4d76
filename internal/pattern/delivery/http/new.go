package http

import (
	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/pkg/log"
)

// Handler is the public interface for the shot/pattern HTTP delivery layer.
type Handler interface {
	LogShot(c interface{})
	ListPatterns(c interface{})
	RefreshPatterns(c interface{})
}

type handler struct {
	l  log.Logger
	uc pattern.UseCase
}

// New creates a new HTTP handler for the pattern domain.
func New(l log.Logger, uc pattern.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
