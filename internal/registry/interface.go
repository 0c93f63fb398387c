package registry

import (
	"context"

	"github-relay-bot/internal/model"
)

// Registry is the durable store of token -> chat bindings.
//
//go:generate mockery --name Registry
type Registry interface {
	// FindByToken resolves a webhook token to its binding.
	FindByToken(ctx context.Context, token string) (model.Binding, bool)
	// FindByChat returns the binding of a chat, if it is registered.
	FindByChat(ctx context.Context, chatID int64) (model.Binding, bool)
	// Register binds chatID to a fresh token, or returns the token it already holds.
	Register(ctx context.Context, chatID int64) (string, error)
	// Unregister removes every binding of chatID. Unknown chats are a no-op.
	Unregister(ctx context.Context, chatID int64) error
	// WebhookURL renders the public webhook URL for token.
	WebhookURL(token string) string
	// BotToken returns the Telegram credential kept in the state record.
	BotToken() string
}
