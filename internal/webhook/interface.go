package webhook

import "context"

// UseCase turns one GitHub webhook into at most one chat message.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Dispatch(ctx context.Context, input DispatchInput) (Outcome, error)
}

// Sender delivers a rendered message to a chat.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string, markdown bool) error
}
