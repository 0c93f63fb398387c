package usecase

import (
	"context"
	"fmt"

	"github-relay-bot/internal/model"
	"github-relay-bot/internal/registry"
)

// Register binds chatID to a new token. A chat that is already bound keeps its
// token and nothing is written.
func (uc *implUseCase) Register(ctx context.Context, chatID int64) (string, error) {
	if chatID == 0 {
		return "", registry.ErrInvalidChatID
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if b, ok := uc.findByChatLocked(chatID); ok {
		uc.l.Debugf(ctx, "registry.Register: chat %d already bound", chatID)
		return b.Token, nil
	}

	token, err := uc.mintLocked()
	if err != nil {
		uc.l.Errorf(ctx, "registry.Register mint: %v", err)
		return "", err
	}

	next := uc.state.Clone()
	next.Chats[token] = chatID
	if err := uc.commitLocked(ctx, "register", next); err != nil {
		return "", err
	}

	uc.l.Infof(ctx, "registry.Register: chat %d registered", chatID)
	return token, nil
}

// Unregister drops every binding held by chatID and persists the result.
func (uc *implUseCase) Unregister(ctx context.Context, chatID int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.state.Clone()
	removed := 0
	for token, id := range next.Chats {
		if id == chatID {
			delete(next.Chats, token)
			removed++
		}
	}

	if err := uc.commitLocked(ctx, "unregister", next); err != nil {
		return err
	}

	uc.l.Infof(ctx, "registry.Unregister: chat %d, %d binding(s) removed", chatID, removed)
	return nil
}

// mintLocked returns a token not present in the current state.
func (uc *implUseCase) mintLocked() (string, error) {
	for attempt := 0; attempt < registry.MaxMintAttempts; attempt++ {
		token := uc.newToken()
		if token == "" {
			continue
		}
		if _, taken := uc.state.Chats[token]; !taken {
			return token, nil
		}
	}
	return "", registry.ErrTokenExhausted
}

// commitLocked persists next and swaps it in only after the store accepted it.
func (uc *implUseCase) commitLocked(ctx context.Context, op string, next model.State) error {
	if err := uc.store.Save(ctx, next); err != nil {
		uc.m.RegistryMutations.WithLabelValues(op, "failed").Inc()
		uc.l.Errorf(ctx, "registry.%s Save: %v", op, err)
		return fmt.Errorf("%w: %v", registry.ErrPersistence, err)
	}

	uc.state = next
	uc.m.RegistryMutations.WithLabelValues(op, "ok").Inc()
	uc.m.Bindings.Set(float64(len(next.Chats)))
	return nil
}
