package usecase

import (
	"time"

	"golf-caddy-core/internal/assistant"
	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/normalizer"
	"golf-caddy-core/internal/routing"
	"golf-caddy-core/internal/session"
	"golf-caddy-core/pkg/log"
	"golf-caddy-core/pkg/metrics"
)

type implUseCase struct {
	l          log.Logger
	normalizer *normalizer.Normalizer
	sessions   *session.Store
	classifier classifier.UseCase
	router     routing.UseCase
	metrics    *metrics.Metrics

	now func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the pipeline use case.
func New(
	l log.Logger,
	norm *normalizer.Normalizer,
	sessions *session.Store,
	cls classifier.UseCase,
	router routing.UseCase,
	m *metrics.Metrics,
) assistant.UseCase {
	return &implUseCase{
		l:          l,
		normalizer: norm,
		sessions:   sessions,
		classifier: cls,
		router:     router,
		metrics:    m,
		now:        func() time.Time { return time.Now().UTC() },
	}
}
