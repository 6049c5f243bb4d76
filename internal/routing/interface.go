package routing

import (
	"context"
	"time"

	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/session"
)

// Input is one classified utterance plus the context routing needs.
type Input struct {
	Classification classifier.Result
	Session        session.Snapshot
	Now            time.Time
}

type UseCase interface {
	// Route maps a classification onto exactly one Result. Identical inputs
	// produce identical results.
	Route(ctx context.Context, input Input) (Result, error)
}

// PrerequisiteChecker reports which of the required preconditions do not
// hold. The returned slice preserves the input order.
type PrerequisiteChecker interface {
	CheckAll(ctx context.Context, required []model.Prerequisite, snap session.Snapshot) ([]model.Prerequisite, error)
}
