package usecase

// Stage labels for latency metrics.
const (
	stageNormalize = "normalize"
	stageClassify  = "classify"
	stageRoute     = "route"
)

// Routing result variants for metrics.
const (
	variantNavigate      = "navigate"
	variantNoNavigation  = "no_navigation"
	variantConfirmation  = "confirmation_required"
	variantPrereqMissing = "prerequisite_missing"
)

const logPrefixProcess = "assistant.usecase.Process: "

// defaultSessionID groups utterances that arrive without a session.
const defaultSessionID = "anonymous"
