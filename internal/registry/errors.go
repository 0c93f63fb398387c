package registry

import "errors"

// Domain-specific errors for the registry package.
var (
	ErrPersistence    = errors.New("registry state could not be persisted")
	ErrTokenExhausted = errors.New("could not mint a unique token")
	ErrInvalidChatID  = errors.New("chat id must not be zero")
)
