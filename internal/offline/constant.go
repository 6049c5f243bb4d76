package offline

import "golf-caddy-core/internal/model"

// Threshold defaults. The offline tiers mirror the online Route/Confirm/
// Clarify gate so both paths look the same to the caller, but the numbers are
// independently tunable.
const (
	DefaultStrongThreshold = 0.70
	DefaultWeakThreshold   = 0.40

	// MaxClarifyCandidates bounds the suggestion list.
	MaxClarifyCandidates = 3
)

// keywordSets maps each intent to its weighted keyword vocabulary. A score is
// the matched weight divided by the set's total weight, which normalizes for
// vocabulary size. Sets are kept lean on purpose: a bloated set can never
// score high.
var keywordSets = map[model.IntentType]map[string]float64{
	model.IntentScoreEntry: {
		"enter score": 3,
		"score":       2,
		"hole":        1,
	},
	model.IntentScoreView: {
		"scorecard":  4,
		"show score": 3,
		"my score":   3,
	},
	model.IntentRoundStart: {
		"start":   3,
		"round":   2,
		"tee off": 2,
	},
	model.IntentRoundSummary: {
		"summary": 6,
		"recap":   3,
		"round":   1,
	},
	model.IntentStatsView: {
		"stats":        7,
		"statistics":   2,
		"fairways hit": 1,
	},
	model.IntentDistanceQuery: {
		"how far":  7,
		"distance": 2,
		"yards":    1,
	},
	model.IntentClubRecommendation: {
		"club should i": 6,
		"what club":     2,
		"which club":    2,
	},
	model.IntentShotLog: {
		"log":   3,
		"miss":  3,
		"slice": 2,
		"hook":  2,
	},
	model.IntentMissPatternQuery: {
		"where do i miss": 5,
		"tendency":        3,
		"miss pattern":    2,
	},
	model.IntentRecoveryCheck: {
		"recovery":    7,
		"bounce back": 3,
	},
	model.IntentEquipmentInfo: {
		"my bag":    3,
		"bag":       2,
		"equipment": 2,
	},
	model.IntentEquipmentEdit: {
		"add club":    4,
		"remove club": 4,
		"swap":        2,
	},
	model.IntentCourseInfo: {
		"course":  5,
		"layout":  3,
		"par for": 2,
	},
	model.IntentWeatherCheck: {
		"weather":  6,
		"wind":     3,
		"forecast": 1,
	},
	model.IntentPracticeSuggestion: {
		"practice": 5,
		"drill":    4,
		"work on":  1,
	},
	model.IntentSwingTip: {
		"swing":  4,
		"tip":    3,
		"fix my": 3,
	},
	model.IntentHelp: {
		"help":            7,
		"what can you do": 3,
	},
}

// networkOnlyIntents cannot be served locally even when matched: their
// answers come from remote content (weather, course data, generated advice).
var networkOnlyIntents = map[model.IntentType]bool{
	model.IntentCourseInfo:         true,
	model.IntentWeatherCheck:       true,
	model.IntentPracticeSuggestion: true,
	model.IntentSwingTip:           true,
}

// Messages. Fixed wording keeps offline behavior testable.
const (
	MsgRequiresNetwork = "That looks like a %s request, which needs a network connection. Please try again when you're back online."
)
