package model

import (
	"strconv"

	"github.com/google/uuid"
)

// IntentType identifies what the user wants the assistant to do.
type IntentType string

const (
	IntentScoreEntry         IntentType = "SCORE_ENTRY"
	IntentScoreView          IntentType = "SCORE_VIEW"
	IntentRoundStart         IntentType = "ROUND_START"
	IntentRoundSummary       IntentType = "ROUND_SUMMARY"
	IntentStatsView          IntentType = "STATS_VIEW"
	IntentDistanceQuery      IntentType = "DISTANCE_QUERY"
	IntentClubRecommendation IntentType = "CLUB_RECOMMENDATION"
	IntentShotLog            IntentType = "SHOT_LOG"
	IntentMissPatternQuery   IntentType = "MISS_PATTERN_QUERY"
	IntentRecoveryCheck      IntentType = "RECOVERY_CHECK"
	IntentEquipmentInfo      IntentType = "EQUIPMENT_INFO"
	IntentEquipmentEdit      IntentType = "EQUIPMENT_EDIT"
	IntentCourseInfo         IntentType = "COURSE_INFO"
	IntentWeatherCheck       IntentType = "WEATHER_CHECK"
	IntentPracticeSuggestion IntentType = "PRACTICE_SUGGESTION"
	IntentSwingTip           IntentType = "SWING_TIP"
	IntentHelp               IntentType = "HELP"

	// IntentUnknown is the catch-all for unclassifiable input. It is never
	// routable and always ends in clarification.
	IntentUnknown IntentType = "UNKNOWN"
)

// KnownIntentTypes lists every classifiable intent, in a fixed order.
var KnownIntentTypes = []IntentType{
	IntentScoreEntry,
	IntentScoreView,
	IntentRoundStart,
	IntentRoundSummary,
	IntentStatsView,
	IntentDistanceQuery,
	IntentClubRecommendation,
	IntentShotLog,
	IntentMissPatternQuery,
	IntentRecoveryCheck,
	IntentEquipmentInfo,
	IntentEquipmentEdit,
	IntentCourseInfo,
	IntentWeatherCheck,
	IntentPracticeSuggestion,
	IntentSwingTip,
	IntentHelp,
}

// ParseIntentType maps a raw string to a known IntentType, or IntentUnknown.
func ParseIntentType(raw string) IntentType {
	for _, t := range KnownIntentTypes {
		if string(t) == raw {
			return t
		}
	}
	return IntentUnknown
}

// Entities is the sparse set of structured values extracted from input.
// Extraction is best-effort; a nil field just means "not mentioned".
type Entities struct {
	Club    *string
	Hole    *int
	Score   *int
	Yardage *int
	Lie     *string
}

// Params renders the set entity fields as route parameters.
// Key names are stable; absent fields produce no key.
func (e Entities) Params() map[string]string {
	params := make(map[string]string)
	if e.Club != nil {
		params["club"] = *e.Club
	}
	if e.Hole != nil {
		params["hole"] = strconv.Itoa(*e.Hole)
	}
	if e.Score != nil {
		params["score"] = strconv.Itoa(*e.Score)
	}
	if e.Yardage != nil {
		params["yardage"] = strconv.Itoa(*e.Yardage)
	}
	if e.Lie != nil {
		params["lie"] = *e.Lie
	}
	return params
}

// Intent is the classified user goal. Immutable once produced: created by a
// classifier, consumed by the routing orchestrator.
type Intent struct {
	ID         string
	Type       IntentType
	Confidence float64 // [0,1]
	Entities   Entities
	RawInput   string
}

// NewIntent creates an Intent with a fresh ID.
func NewIntent(t IntentType, confidence float64, entities Entities, rawInput string) Intent {
	return Intent{
		ID:         uuid.NewString(),
		Type:       t,
		Confidence: confidence,
		Entities:   entities,
		RawInput:   rawInput,
	}
}
