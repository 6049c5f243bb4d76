package assistant

import "context"

// UseCase is the full decision pipeline: normalize, classify, route, and
// update session state, producing exactly one result per utterance.
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}
