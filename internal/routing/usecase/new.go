package usecase

import (
	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/internal/routing"
	"golf-caddy-core/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	checker  routing.PrerequisiteChecker
	patterns pattern.UseCase
}

var _ routing.UseCase = (*implUseCase)(nil)

// New creates the routing orchestrator.
func New(l log.Logger, checker routing.PrerequisiteChecker, patterns pattern.UseCase) routing.UseCase {
	return &implUseCase{
		l:        l,
		checker:  checker,
		patterns: patterns,
	}
}
