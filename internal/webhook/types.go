package webhook

// DispatchInput is one inbound webhook request.
type DispatchInput struct {
	Token      string // path token identifying the destination chat
	EventKind  string // X-GitHub-Event
	DeliveryID string // X-GitHub-Delivery, may be empty
	Body       []byte
}

// Outcome is the result of a successful Dispatch.
type Outcome string

const (
	// OutcomeAccepted means exactly one message was delivered.
	OutcomeAccepted Outcome = "accepted"
	// OutcomeDuplicate means the delivery id was already handled and nothing was sent.
	OutcomeDuplicate Outcome = "duplicate"
)

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret string // Shared secret for signature verification, empty disables the check
}
