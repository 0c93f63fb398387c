package webhook

import "errors"

// Domain-specific errors for the webhook package.
var (
	ErrMalformedPayload     = errors.New("payload is not a JSON object")
	ErrUnsupportedEventKind = errors.New("unsupported event kind")
	ErrUnknownToken         = errors.New("unknown webhook token")
	ErrDeliveryFailed       = errors.New("failed to deliver message")
	ErrDeliveryInFlight     = errors.New("delivery is still being processed")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
)
