package model

import "time"

// MissDirection describes where a shot went relative to the target.
type MissDirection string

const (
	MissLeft     MissDirection = "LEFT"
	MissRight    MissDirection = "RIGHT"
	MissLong     MissDirection = "LONG"
	MissShort    MissDirection = "SHORT"
	MissSlice    MissDirection = "SLICE"
	MissHook     MissDirection = "HOOK"
	MissPush     MissDirection = "PUSH"
	MissPull     MissDirection = "PULL"
	MissFat      MissDirection = "FAT"
	MissThin     MissDirection = "THIN"
	MissStraight MissDirection = "STRAIGHT"
)

// ParseMissDirection maps a raw string to a MissDirection.
func ParseMissDirection(raw string) (MissDirection, bool) {
	switch MissDirection(raw) {
	case MissLeft, MissRight, MissLong, MissShort, MissSlice, MissHook,
		MissPush, MissPull, MissFat, MissThin, MissStraight:
		return MissDirection(raw), true
	}
	return "", false
}

// Lie describes the ball position a shot was played from.
type Lie string

const (
	LieTee     Lie = "TEE"
	LieFairway Lie = "FAIRWAY"
	LieRough   Lie = "ROUGH"
	LieBunker  Lie = "BUNKER"
	LieGreen   Lie = "GREEN"
	LieUnknown Lie = "UNKNOWN"
)

// PressureContext marks whether a shot was hit under pressure.
type PressureContext struct {
	IsUserTagged bool `json:"is_user_tagged"`
	IsInferred   bool `json:"is_inferred"`
}

// MissEvent is a single recorded miss. Append-only: written once by the
// shot-logging collaborator, read many times by the aggregator.
type MissEvent struct {
	ID         string
	Timestamp  time.Time
	ClubID     string
	Direction  MissDirection
	Lie        Lie
	Pressure   PressureContext
	HoleNumber *int
	Notes      string
}

// MissPattern is an aggregated, decayed description of a recurring miss
// tendency. Derived from MissEvents; never edited directly, only superseded
// by re-aggregation.
type MissPattern struct {
	ID             string
	Direction      MissDirection
	Frequency      int
	Confidence     float64 // [0,1]
	LastOccurrence time.Time
	Club           string           // empty when not partitioned by club
	Pressure       *PressureContext // nil when not partitioned by pressure
}
