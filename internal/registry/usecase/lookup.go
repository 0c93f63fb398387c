package usecase

import (
	"context"
	"strings"

	"github-relay-bot/internal/model"
	"github-relay-bot/internal/registry"
)

// FindByToken resolves a webhook token to its binding.
func (uc *implUseCase) FindByToken(ctx context.Context, token string) (model.Binding, bool) {
	if token == "" {
		return model.Binding{}, false
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	chatID, ok := uc.state.Chats[token]
	if !ok {
		return model.Binding{}, false
	}
	return model.Binding{Token: token, ChatID: chatID}, true
}

// FindByChat returns the binding of chatID.
func (uc *implUseCase) FindByChat(ctx context.Context, chatID int64) (model.Binding, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.findByChatLocked(chatID)
}

// findByChatLocked picks the lexicographically smallest token when a chat
// carries more than one binding, so repeated lookups agree.
func (uc *implUseCase) findByChatLocked(chatID int64) (model.Binding, bool) {
	found := false
	var best string
	for token, id := range uc.state.Chats {
		if id != chatID {
			continue
		}
		if !found || token < best {
			best = token
			found = true
		}
	}
	if !found {
		return model.Binding{}, false
	}
	return model.Binding{Token: best, ChatID: chatID}, true
}

// WebhookURL renders the base URL template for token.
func (uc *implUseCase) WebhookURL(token string) string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return strings.ReplaceAll(uc.state.BaseURL, registry.TokenPlaceholder, token)
}

// BotToken returns the Telegram credential from the state record.
func (uc *implUseCase) BotToken() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state.BotToken
}

// Count returns the number of bindings held in memory.
func (uc *implUseCase) Count(ctx context.Context) int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.state.Chats)
}
