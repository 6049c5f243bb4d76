package classifier

import "context"

type UseCase interface {
	// Classify turns one user utterance into a verdict and an intent. It
	// never returns an error for classification uncertainty; errors mean the
	// input itself violated the contract.
	Classify(ctx context.Context, input Input) (Result, error)
}
