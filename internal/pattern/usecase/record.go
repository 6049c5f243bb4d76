package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/pattern"
)

// Record validates and appends one miss event.
func (uc *implUseCase) Record(ctx context.Context, input pattern.RecordInput) (model.MissEvent, error) {
	if _, ok := model.ParseMissDirection(string(input.Direction)); !ok {
		return model.MissEvent{}, fmt.Errorf("%w: %q", pattern.ErrInvalidDirection, input.Direction)
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	if timestamp.After(time.Now().Add(time.Minute)) {
		return model.MissEvent{}, pattern.ErrFutureEvent
	}

	lie := input.Lie
	if lie == "" {
		lie = model.LieUnknown
	}

	event := model.MissEvent{
		ID:         uuid.NewString(),
		Timestamp:  timestamp,
		ClubID:     input.ClubID,
		Direction:  input.Direction,
		Lie:        lie,
		Pressure:   input.Pressure,
		HoleNumber: input.HoleNumber,
		Notes:      input.Notes,
	}

	if err := uc.events.AppendEvent(ctx, event); err != nil {
		return model.MissEvent{}, fmt.Errorf("append event: %w", err)
	}

	uc.l.Debugf(ctx, "Recorded miss event %s: %s with %s", event.ID, event.Direction, event.ClubID)
	return event, nil
}
