package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"github-relay-bot/internal/registry"
	pkgLog "github-relay-bot/pkg/log"
	"github-relay-bot/pkg/metrics"
	pkgTelegram "github-relay-bot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	// HandleWebhook is the gin handler for POST /webhook/telegram.
	HandleWebhook(c *gin.Context)
	// HandleUpdate processes one update; used by the long poller.
	HandleUpdate(ctx context.Context, update pkgTelegram.Update)
}

// Sender is the chat transport used for replies.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string, markdown bool) error
}

// Options configures the handler.
type Options struct {
	// WebhookSecret must match the secret-token header when non-empty.
	WebhookSecret string
	// BotUsername drops commands addressed to other bots (/cmd@OtherBot) when set.
	BotUsername string
}

type handler struct {
	l        pkgLog.Logger
	reg      registry.Registry
	sender   Sender
	m        *metrics.Metrics
	opt      Options
	commands map[string]commandFunc
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, reg registry.Registry, sender Sender, m *metrics.Metrics, opt Options) Handler {
	h := &handler{
		l:      l,
		reg:    reg,
		sender: sender,
		m:      m,
		opt:    opt,
	}
	h.commands = h.commandTable()
	return h
}
