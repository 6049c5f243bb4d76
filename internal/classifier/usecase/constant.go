package usecase

// Log prefixes.
const (
	logPrefixClassify = "classifier.usecase.Classify: "
)

// Generation parameters. Classification wants determinism, not creativity.
const (
	generationTemperature = 0.0
	generationMaxTokens   = 256
)

// systemInstruction is the fixed classification prompt. buildRequest appends
// the intent catalog from model.KnownIntentTypes at runtime so the prompt and
// the type system cannot drift apart.
const systemInstruction = `You are the intent classifier for a golf caddy assistant.
Classify the user's latest message into exactly one intent from the list below.

Respond with ONLY a JSON object in this exact shape, no prose, no markdown:
{"intent": "<INTENT>", "confidence": <0.0-1.0>, "entities": {"club": null, "hole": null, "score": null, "yardage": null, "lie": null}}

Rules:
- confidence reflects how certain you are, calibrated between 0 and 1.
- Use "UNKNOWN" when no listed intent fits.
- entities: fill only values the user actually stated. club is a club name
  like "7-iron". hole is 1-18. lie is one of TEE, FAIRWAY, ROUGH, BUNKER, GREEN.
- Conversation context may resolve pronouns ("same club", "that hole").

Intents:`
