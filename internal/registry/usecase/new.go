package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github-relay-bot/internal/model"
	"github-relay-bot/internal/registry"
	"github-relay-bot/internal/registry/repository"
	pkgLog "github-relay-bot/pkg/log"
	"github-relay-bot/pkg/metrics"
)

// Options seeds fields the state record does not carry yet.
type Options struct {
	BaseURL  string
	BotToken string

	// NewToken overrides token generation. Defaults to uuid.NewString.
	NewToken func() string
}

// implUseCase is the private implementation of registry.Registry.
// All mutations are serialized by mu; lookups share the read lock.
type implUseCase struct {
	mu       sync.RWMutex
	state    model.State
	store    repository.Store
	newToken func() string
	l        pkgLog.Logger
	m        *metrics.Metrics
}

var _ registry.Registry = (*implUseCase)(nil)

// New loads the state once from store and returns the registry that owns it.
func New(ctx context.Context, store repository.Store, l pkgLog.Logger, m *metrics.Metrics, opt Options) (*implUseCase, error) {
	state, err := store.Load(ctx)
	if err != nil {
		l.Errorf(ctx, "registry.New Load: %v", err)
		return nil, err
	}

	newToken := opt.NewToken
	if newToken == nil {
		newToken = uuid.NewString
	}

	uc := &implUseCase{
		state:    state.Clone(),
		store:    store,
		newToken: newToken,
		l:        l,
		m:        m,
	}

	seeded := uc.state.Clone()
	changed := false
	if seeded.BaseURL == "" && opt.BaseURL != "" {
		seeded.BaseURL = opt.BaseURL
		changed = true
	}
	if seeded.BotToken == "" && opt.BotToken != "" {
		seeded.BotToken = opt.BotToken
		changed = true
	}
	if changed {
		uc.mu.Lock()
		err := uc.commitLocked(ctx, "seed", seeded)
		uc.mu.Unlock()
		if err != nil {
			return nil, err
		}
	}

	m.Bindings.Set(float64(len(uc.state.Chats)))
	l.Infof(ctx, "registry loaded with %d binding(s)", len(uc.state.Chats))
	return uc, nil
}
