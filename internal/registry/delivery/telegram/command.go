package telegram

import (
	"context"
	"strings"
)

// commandFunc handles one command for a chat. It replies itself.
type commandFunc func(ctx context.Context, chatID int64) error

func (h *handler) commandTable() map[string]commandFunc {
	return map[string]commandFunc{
		"start":      h.start,
		"status":     h.status,
		"guide":      h.guide,
		"register":   h.register,
		"unregister": h.unregister,
	}
}

// parseCommand extracts the command name from "/name@Bot args".
// A command addressed to a different bot is not ours.
func parseCommand(text, botUsername string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", false
	}

	name := strings.TrimPrefix(fields[0], "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		target := name[at+1:]
		name = name[:at]
		if botUsername != "" && !strings.EqualFold(target, botUsername) {
			return "", false
		}
	}
	if name == "" {
		return "", false
	}
	return name, true
}

func (h *handler) start(ctx context.Context, chatID int64) error {
	if err := h.sender.SendText(ctx, chatID, welcomeText, false); err != nil {
		return err
	}
	return h.status(ctx, chatID)
}

func (h *handler) status(ctx context.Context, chatID int64) error {
	b, ok := h.reg.FindByChat(ctx, chatID)
	if !ok {
		return h.sender.SendText(ctx, chatID, statusUnregisteredText, true)
	}
	return h.sender.SendText(ctx, chatID, statusRegisteredText(h.reg.WebhookURL(b.Token)), true)
}

func (h *handler) guide(ctx context.Context, chatID int64) error {
	b, ok := h.reg.FindByChat(ctx, chatID)
	if !ok {
		return h.sender.SendText(ctx, chatID, guideUnregisteredText, true)
	}
	return h.sender.SendText(ctx, chatID, guideRegisteredText(h.reg.WebhookURL(b.Token)), true)
}

func (h *handler) register(ctx context.Context, chatID int64) error {
	if _, err := h.reg.Register(ctx, chatID); err != nil {
		if sendErr := h.sender.SendText(ctx, chatID, saveFailedText, false); sendErr != nil {
			h.l.Warnf(ctx, "telegram handler: failed to report register failure: %v", sendErr)
		}
		return err
	}
	return h.status(ctx, chatID)
}

func (h *handler) unregister(ctx context.Context, chatID int64) error {
	if err := h.reg.Unregister(ctx, chatID); err != nil {
		if sendErr := h.sender.SendText(ctx, chatID, saveFailedText, false); sendErr != nil {
			h.l.Warnf(ctx, "telegram handler: failed to report unregister failure: %v", sendErr)
		}
		return err
	}
	return h.status(ctx, chatID)
}
