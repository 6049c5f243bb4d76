package usecase

import "golf-caddy-core/internal/model"

type destination struct {
	Module string
	Screen string
}

// destinations is the static intent-to-screen table. Intents absent here
// (MISS_PATTERN_QUERY, HELP) are answered inline instead of navigating.
var destinations = map[model.IntentType]destination{
	model.IntentScoreEntry:         {Module: "scoring", Screen: "entry"},
	model.IntentScoreView:          {Module: "scoring", Screen: "card"},
	model.IntentRoundStart:         {Module: "rounds", Screen: "start"},
	model.IntentRoundSummary:       {Module: "rounds", Screen: "summary"},
	model.IntentStatsView:          {Module: "stats", Screen: "overview"},
	model.IntentDistanceQuery:      {Module: "caddy", Screen: "distance"},
	model.IntentClubRecommendation: {Module: "caddy", Screen: "club"},
	model.IntentShotLog:            {Module: "shots", Screen: "log"},
	model.IntentRecoveryCheck:      {Module: "stats", Screen: "recovery"},
	model.IntentEquipmentInfo:      {Module: "equipment", Screen: "bag"},
	model.IntentEquipmentEdit:      {Module: "equipment", Screen: "edit"},
	model.IntentCourseInfo:         {Module: "course", Screen: "info"},
	model.IntentWeatherCheck:       {Module: "course", Screen: "weather"},
	model.IntentPracticeSuggestion: {Module: "practice", Screen: "suggestion"},
	model.IntentSwingTip:           {Module: "practice", Screen: "swing"},
}

// inlineIntents are answered in place, never by navigation.
var inlineIntents = map[model.IntentType]bool{
	model.IntentMissPatternQuery: true,
	model.IntentHelp:             true,
}

// prerequisites lists the preconditions each intent needs before its
// destination is usable. Intents absent here have none.
var prerequisites = map[model.IntentType][]model.Prerequisite{
	model.IntentScoreEntry:         {model.PrereqActiveRound},
	model.IntentRoundSummary:       {model.PrereqActiveRound},
	model.IntentStatsView:          {model.PrereqScoreHistory},
	model.IntentRecoveryCheck:      {model.PrereqRecoveryData},
	model.IntentMissPatternQuery:   {model.PrereqShotData},
	model.IntentClubRecommendation: {model.PrereqEquipmentSet},
	model.IntentEquipmentInfo:      {model.PrereqEquipmentSet},
	model.IntentEquipmentEdit:      {model.PrereqEquipmentSet},
}

// prereqMessages is the user-facing wording per missing prerequisite.
var prereqMessages = map[model.Prerequisite]string{
	model.PrereqRecoveryData: "I don't have any recovery data yet. Log a few rounds first.",
	model.PrereqShotData:     "I haven't seen any shots yet. Log a few misses and ask me again.",
	model.PrereqActiveRound:  "There's no round in progress. Start a round first.",
	model.PrereqEquipmentSet: "Your bag is empty. Add your clubs first.",
	model.PrereqScoreHistory: "No scores on file yet. Play a round and I'll crunch the numbers.",
}

// Inline response texts.
const (
	MsgHelp = "You can enter scores, check distances, get club recommendations, " +
		"log shots, review your miss tendencies, and more. Just ask."
	MsgNoMissPattern = "No clear miss pattern yet. Keep logging shots and I'll spot your tendencies."
)
