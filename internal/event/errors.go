package event

import "errors"

var (
	ErrMalformedPayload     = errors.New("payload is not a JSON object")
	ErrUnsupportedEventKind = errors.New("unsupported event kind")
)
