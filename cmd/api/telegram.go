package main

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github-relay-bot/config"
	"github-relay-bot/pkg/log"
	"github-relay-bot/pkg/telegram"
)

const telegramWebhookPath = "/webhook/telegram"

// webhookRegistrar is the part of the Bot API used to pick the update mode.
type webhookRegistrar interface {
	SetWebhook(ctx context.Context, webhookURL, secret string) error
	DeleteWebhook(ctx context.Context) error
}

var _ webhookRegistrar = (*telegram.Bot)(nil)

// ensureWebhookSecret returns secret, or a fresh random one when none is configured.
func ensureWebhookSecret(ctx context.Context, l log.Logger, secret string) string {
	if secret != "" {
		return secret
	}
	l.Warn(ctx, "telegram.webhook_secret not set, using a random secret for this run")
	return uuid.NewString()
}

// resolveWebhookURL returns the configured webhook URL or one derived from an ngrok tunnel.
func resolveWebhookURL(ctx context.Context, l log.Logger, cfg config.TelegramConfig) string {
	if cfg.WebhookURL != "" {
		return cfg.WebhookURL
	}
	if cfg.NgrokAPIURL == "" {
		return ""
	}

	ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPIURL)
	if err != nil {
		l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		return ""
	}
	l.Infof(ctx, "Auto-detected ngrok URL: %s", ngrokURL)
	return strings.TrimRight(ngrokURL, "/") + telegramWebhookPath
}

// setupTelegramMode registers the webhook when a public URL is known and
// reports true. Otherwise it clears any webhook so long polling can run.
func setupTelegramMode(ctx context.Context, l log.Logger, bot webhookRegistrar, cfg config.TelegramConfig) bool {
	if webhookURL := resolveWebhookURL(ctx, l, cfg); webhookURL != "" {
		if err := bot.SetWebhook(ctx, webhookURL, cfg.WebhookSecret); err != nil {
			l.Warnf(ctx, "Failed to set Telegram webhook, falling back to long polling: %v", err)
		} else {
			l.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			return true
		}
	}

	if err := bot.DeleteWebhook(ctx); err != nil {
		l.Warnf(ctx, "Failed to delete Telegram webhook: %v", err)
	}
	l.Info(ctx, "Telegram updates via long polling")
	return false
}
