package pattern

import "errors"

var (
	ErrInvalidDirection = errors.New("invalid miss direction")
	ErrFutureEvent      = errors.New("miss event timestamp is in the future")
)
