package classifier

import "time"

// Gate and deadline defaults. Voice gets extra headroom for transcription
// latency upstream.
const (
	DefaultRouteThreshold   = 0.75
	DefaultConfirmThreshold = 0.50

	DefaultTextTimeout  = 3 * time.Second
	DefaultVoiceTimeout = 4500 * time.Millisecond
)
