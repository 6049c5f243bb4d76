package usecase

import (
	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/internal/pattern/repository"
	pkgLog "golf-caddy-core/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	events      repository.EventRepository
	patternRepo repository.PatternRepository
	cfg         pattern.Config
}

// New creates a new pattern UseCase instance.
func New(
	l pkgLog.Logger,
	events repository.EventRepository,
	patternRepo repository.PatternRepository,
	cfg pattern.Config,
) *implUseCase {
	if cfg.MinSampleSize <= 0 {
		cfg = pattern.DefaultConfig()
	}
	return &implUseCase{
		l:           l,
		events:      events,
		patternRepo: patternRepo,
		cfg:         cfg,
	}
}

// Ensure implUseCase implements pattern.UseCase.
var _ pattern.UseCase = (*implUseCase)(nil)
