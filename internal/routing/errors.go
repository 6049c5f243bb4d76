package routing

import "errors"

var (
	ErrNoDestination  = errors.New("intent has no destination")
	ErrUnknownVerdict = errors.New("unknown classification verdict")
)
