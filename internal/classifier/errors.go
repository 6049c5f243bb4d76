package classifier

import "errors"

var (
	ErrEmptyInput       = errors.New("input text is empty")
	ErrUnknownModality  = errors.New("unknown input modality")
	ErrMalformedPayload = errors.New("classifier payload is malformed")
)
