package usecase

import (
	"context"
	"time"

	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/offline"
	"golf-caddy-core/pkg/llmprovider"
	"golf-caddy-core/pkg/log"
)

// ContentGenerator is the slice of the provider manager the classifier needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config holds the gate thresholds and per-modality deadlines. Zero values
// fall back to defaults.
type Config struct {
	RouteThreshold   float64
	ConfirmThreshold float64
	TextTimeout      time.Duration
	VoiceTimeout     time.Duration
}

type implUseCase struct {
	l         log.Logger
	generator ContentGenerator
	matcher   *offline.Matcher
	cfg       Config
}

var _ classifier.UseCase = (*implUseCase)(nil)

// New creates the classification use case.
func New(l log.Logger, generator ContentGenerator, matcher *offline.Matcher, cfg Config) classifier.UseCase {
	if cfg.RouteThreshold <= 0 {
		cfg.RouteThreshold = classifier.DefaultRouteThreshold
	}
	if cfg.ConfirmThreshold <= 0 {
		cfg.ConfirmThreshold = classifier.DefaultConfirmThreshold
	}
	if cfg.TextTimeout <= 0 {
		cfg.TextTimeout = classifier.DefaultTextTimeout
	}
	if cfg.VoiceTimeout <= 0 {
		cfg.VoiceTimeout = classifier.DefaultVoiceTimeout
	}

	return &implUseCase{
		l:         l,
		generator: generator,
		matcher:   matcher,
		cfg:       cfg,
	}
}
