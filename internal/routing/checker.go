package routing

import (
	"context"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/internal/session"
)

// Checker is the repository-backed PrerequisiteChecker. Shot and recovery
// data come from the miss-pattern store, the active round from the session.
// Equipment and score history live in the companion app's own storage, which
// this service cannot see, so those are reported as met and left to the app
// to enforce at the destination.
type Checker struct {
	patterns pattern.UseCase
}

var _ PrerequisiteChecker = (*Checker)(nil)

// NewChecker creates the default prerequisite checker.
func NewChecker(patterns pattern.UseCase) *Checker {
	return &Checker{patterns: patterns}
}

// CheckAll returns the unmet prerequisites, preserving input order.
func (c *Checker) CheckAll(ctx context.Context, required []model.Prerequisite, snap session.Snapshot) ([]model.Prerequisite, error) {
	var unmet []model.Prerequisite

	for _, prereq := range required {
		met, err := c.check(ctx, prereq, snap)
		if err != nil {
			return nil, err
		}
		if !met {
			unmet = append(unmet, prereq)
		}
	}
	return unmet, nil
}

func (c *Checker) check(ctx context.Context, prereq model.Prerequisite, snap session.Snapshot) (bool, error) {
	switch prereq {
	case model.PrereqShotData:
		count, err := c.patterns.EventCount(ctx, pattern.Filter{})
		return count > 0, err

	case model.PrereqRecoveryData:
		count, err := c.patterns.EventCount(ctx, pattern.Filter{PressureOnly: true})
		return count > 0, err

	case model.PrereqActiveRound:
		return snap.ActiveRound != nil, nil

	case model.PrereqEquipmentSet, model.PrereqScoreHistory:
		return true, nil

	default:
		return true, nil
	}
}
