package telegram

import (
	"context"
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	pkgResponse "github-relay-bot/pkg/response"
	pkgTelegram "github-relay-bot/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// Commands are cheap, so the update is handled before Telegram gets its 200.
// @Summary Receive a Telegram update
// @Description Webhook endpoint registered with setWebhook
// @Tags Telegram
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.opt.WebhookSecret != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.opt.WebhookSecret)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token")
			pkgResponse.Forbidden(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	h.HandleUpdate(ctx, update)
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// HandleUpdate dispatches a message update to its command handler.
// Non-command text and unknown commands are ignored.
func (h *handler) HandleUpdate(ctx context.Context, update pkgTelegram.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		return
	}

	name, ok := parseCommand(msg.Text, h.opt.BotUsername)
	if !ok {
		return
	}
	cmd, ok := h.commands[name]
	if !ok {
		h.l.Debugf(ctx, "telegram handler: unknown command %q from chat %d", name, msg.Chat.ID)
		return
	}

	h.m.Commands.WithLabelValues(name).Inc()
	if err := cmd(ctx, msg.Chat.ID); err != nil {
		h.l.Errorf(ctx, "telegram handler: /%s in chat %d: %v", name, msg.Chat.ID, err)
	}
}
