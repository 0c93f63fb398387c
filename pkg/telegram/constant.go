package telegram

import "time"

const (
	DefaultAPIBase = "https://api.telegram.org"

	ParseModeMarkdown = "Markdown"

	// SecretTokenHeader carries the secret_token given to setWebhook.
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

	defaultRequestTimeout = 15 * time.Second
	defaultPollTimeout    = 30 * time.Second
	pollErrorBackoff      = 3 * time.Second
)

var allowedUpdates = []string{"message"}
