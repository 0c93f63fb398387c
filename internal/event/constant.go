package event

const (
	// Unknown replaces any text field missing from the payload.
	Unknown = "<Unknown>"
	// UnknownURL replaces any URL missing from the payload.
	UnknownURL = "https://github.com/404"

	branchRefPrefix = "refs/heads/"
)
