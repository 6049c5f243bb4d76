// Package decay implements the exponential time-decay math behind the
// miss-pattern memory. Every function is pure: all inputs explicit, no clocks.
package decay

import (
	"math"
	"time"
)

const (
	// DefaultHalfLifeDays is the period after which a memory's contribution halves.
	DefaultHalfLifeDays = 14.0

	// DefaultRetentionDays is the maximum event age considered at all.
	DefaultRetentionDays = 90

	// hardCutoffHalfLives bounds the exponential: past this many half-lives
	// the weight snaps to exactly zero instead of trailing off into float
	// underflow noise.
	hardCutoffHalfLives = 6.0

	hoursPerDay = 24.0
)

// AgeDays returns the fractional age of eventTimestamp relative to now.
// A timestamp in the future is a contract violation.
func AgeDays(eventTimestamp, now time.Time) (float64, error) {
	if eventTimestamp.After(now) {
		return 0, ErrFutureTimestamp
	}
	return now.Sub(eventTimestamp).Hours() / hoursPerDay, nil
}

// Decay computes the exponential decay weight 0.5^(age/halfLife) in [0,1].
// Returns exactly 1.0 at age zero and exactly 0.0 once the age exceeds
// hardCutoffHalfLives half-lives.
func Decay(eventTimestamp, now time.Time, halfLifeDays float64) (float64, error) {
	if halfLifeDays <= 0 {
		return 0, ErrInvalidHalfLife
	}

	ageDays, err := AgeDays(eventTimestamp, now)
	if err != nil {
		return 0, err
	}

	if ageDays == 0 {
		return 1.0, nil
	}
	if ageDays > hardCutoffHalfLives*halfLifeDays {
		return 0.0, nil
	}

	return math.Pow(0.5, ageDays/halfLifeDays), nil
}

// DecayedConfidence scales baseConfidence by the decay weight of lastOccurrence.
func DecayedConfidence(baseConfidence float64, lastOccurrence, now time.Time, halfLifeDays float64) (float64, error) {
	if baseConfidence < 0 || baseConfidence > 1 {
		return 0, ErrConfidenceOutOfRange
	}

	weight, err := Decay(lastOccurrence, now, halfLifeDays)
	if err != nil {
		return 0, err
	}

	return baseConfidence * weight, nil
}

// IsWithinRetentionWindow reports whether the timestamp is recent enough to
// participate in analysis. Boundary-inclusive: age == retentionDays is still
// within the window.
func IsWithinRetentionWindow(timestamp time.Time, retentionDays int, now time.Time) (bool, error) {
	ageDays, err := AgeDays(timestamp, now)
	if err != nil {
		return false, err
	}
	return ageDays <= float64(retentionDays), nil
}
