package clarify

import "golf-caddy-core/internal/model"

// MaxSuggestions caps the options shown to the user. Three fits a phone
// screen and keeps the choice quick.
const MaxSuggestions = 3

// Fixed per-tier messages. Wording is stable so clients can rely on it.
const (
	MsgConfirm        = "Just to confirm: %s?"
	MsgClarifyOptions = "I'm not sure what you meant. Did you want one of these?"
	MsgClarifyOpen    = "I didn't catch that. You can ask about scores, distances, your clubs, or say \"help\"."
)

// intentLabels renders intent types as short user-facing phrases.
var intentLabels = map[model.IntentType]string{
	model.IntentScoreEntry:         "enter a score",
	model.IntentScoreView:          "see your scorecard",
	model.IntentRoundStart:         "start a round",
	model.IntentRoundSummary:       "get a round summary",
	model.IntentStatsView:          "see your stats",
	model.IntentDistanceQuery:      "check a distance",
	model.IntentClubRecommendation: "get a club recommendation",
	model.IntentShotLog:            "log a shot",
	model.IntentMissPatternQuery:   "review your miss tendencies",
	model.IntentRecoveryCheck:      "check your recovery",
	model.IntentEquipmentInfo:      "see what's in your bag",
	model.IntentEquipmentEdit:      "edit your bag",
	model.IntentCourseInfo:         "get course info",
	model.IntentWeatherCheck:       "check the weather",
	model.IntentPracticeSuggestion: "get a practice suggestion",
	model.IntentSwingTip:           "get a swing tip",
	model.IntentHelp:               "see what I can do",
}

// Label returns the user-facing phrase for an intent type.
func Label(t model.IntentType) string {
	if label, ok := intentLabels[t]; ok {
		return label
	}
	return "something else"
}
