package pattern

import (
	"fmt"
	"time"

	"golf-caddy-core/internal/model"
)

// Filter narrows which events participate in aggregation.
// Zero value means "all events".
type Filter struct {
	ClubID string // exact club, empty for any
	// PressureOnly restricts to shots tagged or inferred as pressure shots.
	PressureOnly bool
}

// Key returns the canonical storage key for this filter's materialized
// patterns. Stable across processes: same filter, same key.
func (f Filter) Key() string {
	club := f.ClubID
	if club == "" {
		club = "*"
	}
	pressure := "any"
	if f.PressureOnly {
		pressure = "pressure"
	}
	return fmt.Sprintf("club=%s|ctx=%s", club, pressure)
}

// RecordInput carries a new miss event. ID and Timestamp are filled when
// absent.
type RecordInput struct {
	Timestamp  time.Time
	ClubID     string
	Direction  model.MissDirection
	Lie        model.Lie
	Pressure   model.PressureContext
	HoleNumber *int
	Notes      string
}

// Config holds the aggregation knobs.
type Config struct {
	HalfLifeDays  float64
	RetentionDays int

	// MinSampleSize suppresses patterns built from too few events.
	MinSampleSize int
	// MinShare suppresses directions below this fraction of the filtered set.
	MinShare float64
	// MinConfidence drops patterns whose decayed confidence is noise.
	MinConfidence float64
}

// DefaultConfig returns the production aggregation settings.
func DefaultConfig() Config {
	return Config{
		HalfLifeDays:  14,
		RetentionDays: 90,
		MinSampleSize: 3,
		MinShare:      0.30,
		MinConfidence: 0.10,
	}
}
