package model

// Prerequisite is a named precondition that must hold before navigating to a
// destination (e.g. a recovery check needs at least one recovery datapoint).
type Prerequisite string

const (
	PrereqRecoveryData Prerequisite = "RECOVERY_DATA"
	PrereqShotData     Prerequisite = "SHOT_DATA"
	PrereqActiveRound  Prerequisite = "ACTIVE_ROUND"
	PrereqEquipmentSet Prerequisite = "EQUIPMENT_SET"
	PrereqScoreHistory Prerequisite = "SCORE_HISTORY"
)
