package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("%s/bot%s", DefaultAPIBase, token),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = strings.TrimRight(url, "/")
}

// SetRequestTimeout bounds every call except getUpdates, which adds its
// long-poll timeout on top.
func (b *Bot) SetRequestTimeout(d time.Duration) {
	if d > 0 {
		b.httpClient.Timeout = d
	}
}

// GetMe returns the bot's own user record.
func (b *Bot) GetMe(ctx context.Context) (User, error) {
	raw, err := b.call(ctx, "getMe", struct{}{}, b.httpClient)
	if err != nil {
		return User{}, fmt.Errorf("failed to get bot identity: %w", err)
	}
	var me User
	if err := json.Unmarshal(raw, &me); err != nil {
		return User{}, fmt.Errorf("failed to decode bot identity: %w", err)
	}
	return me, nil
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed back by Telegram in SecretTokenHeader.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	req := SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secret,
		AllowedUpdates: allowedUpdates,
	}
	if _, err := b.call(ctx, "setWebhook", req, b.httpClient); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}

// DeleteWebhook removes the webhook so getUpdates can be used.
func (b *Bot) DeleteWebhook(ctx context.Context) error {
	if _, err := b.call(ctx, "deleteWebhook", struct{}{}, b.httpClient); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	payload := SendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             parseMode,
		DisableWebPagePreview: true,
	}
	if _, err := b.call(ctx, "sendMessage", payload, b.httpClient); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendText sends text to chatID, rendered as Markdown when markdown is set.
func (b *Bot) SendText(ctx context.Context, chatID int64, text string, markdown bool) error {
	mode := ""
	if markdown {
		mode = ParseModeMarkdown
	}
	return b.SendMessageWithMode(ctx, chatID, text, mode)
}

// GetUpdates long-polls for updates after offset for up to timeout.
func (b *Bot) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	req := GetUpdatesRequest{
		Offset:         offset,
		Timeout:        int(timeout / time.Second),
		AllowedUpdates: allowedUpdates,
	}
	client := &http.Client{Timeout: b.httpClient.Timeout + timeout}

	raw, err := b.call(ctx, "getUpdates", req, client)
	if err != nil {
		return nil, fmt.Errorf("failed to get updates: %w", err)
	}

	var updates []Update
	if err := json.Unmarshal(raw, &updates); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}
	return updates, nil
}

// call posts payload to method and returns the result field of a successful answer.
func (b *Bot) call(ctx context.Context, method string, payload any, client *http.Client) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", method, err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: %s status %d: %s", ErrAPI, method, resp.StatusCode, string(raw))
	}
	if resp.StatusCode != http.StatusOK || !apiResp.OK {
		return nil, fmt.Errorf("%w: %s status %d: %s", ErrAPI, method, resp.StatusCode, apiResp.Description)
	}
	return apiResp.Result, nil
}
