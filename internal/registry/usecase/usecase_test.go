package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github-relay-bot/internal/model"
	"github-relay-bot/internal/registry"
	"github-relay-bot/internal/registry/usecase"
	"github-relay-bot/pkg/metrics"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// memStore keeps the last saved state and counts saves.
type memStore struct {
	mu      sync.Mutex
	state   model.State
	saves   int
	loadErr error
	saveErr error
}

func (s *memStore) Load(ctx context.Context) (model.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return model.State{}, s.loadErr
	}
	return s.state.Clone(), nil
}

func (s *memStore) Save(ctx context.Context, state model.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.state = state.Clone()
	return nil
}

func (s *memStore) snapshot() (model.State, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone(), s.saves
}

func newRegistry(t *testing.T, store *memStore, opt usecase.Options) registry.Registry {
	t.Helper()
	uc, err := usecase.New(context.Background(), store, &mockLogger{}, metrics.New(nil), opt)
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	return uc
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Idempotent", func(t *testing.T) {
		store := &memStore{}
		reg := newRegistry(t, store, usecase.Options{})

		first, err := reg.Register(ctx, 100)
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		second, err := reg.Register(ctx, 100)
		if err != nil {
			t.Fatalf("second register: %v", err)
		}
		if first != second {
			t.Errorf("expected the same token, got %q and %q", first, second)
		}

		state, saves := store.snapshot()
		if saves != 1 {
			t.Errorf("expected exactly one save, got %d", saves)
		}
		if len(state.Chats) != 1 || state.Chats[first] != 100 {
			t.Errorf("expected a single binding for chat 100, got %v", state.Chats)
		}
	})

	t.Run("Distinct chats get distinct tokens", func(t *testing.T) {
		reg := newRegistry(t, &memStore{}, usecase.Options{})

		a, err := reg.Register(ctx, 1)
		if err != nil {
			t.Fatal(err)
		}
		b, err := reg.Register(ctx, 2)
		if err != nil {
			t.Fatal(err)
		}
		if a == b {
			t.Errorf("expected distinct tokens, both were %q", a)
		}
		if len(a) != 36 {
			t.Errorf("expected a hyphenated uuid, got %q", a)
		}
	})

	t.Run("Collision is retried", func(t *testing.T) {
		store := &memStore{state: model.State{Chats: map[string]int64{"taken": 7}}}
		seq := []string{"taken", "taken", "fresh"}
		i := 0
		reg := newRegistry(t, store, usecase.Options{NewToken: func() string {
			tok := seq[i]
			i++
			return tok
		}})

		token, err := reg.Register(ctx, 8)
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if token != "fresh" {
			t.Errorf("expected the first non-colliding token, got %q", token)
		}
	})

	t.Run("Token space exhausted", func(t *testing.T) {
		store := &memStore{state: model.State{Chats: map[string]int64{"taken": 7}}}
		reg := newRegistry(t, store, usecase.Options{NewToken: func() string { return "taken" }})

		_, err := reg.Register(ctx, 8)
		if !errors.Is(err, registry.ErrTokenExhausted) {
			t.Fatalf("expected ErrTokenExhausted, got %v", err)
		}
	})

	t.Run("Zero chat id rejected", func(t *testing.T) {
		reg := newRegistry(t, &memStore{}, usecase.Options{})
		if _, err := reg.Register(ctx, 0); !errors.Is(err, registry.ErrInvalidChatID) {
			t.Fatalf("expected ErrInvalidChatID, got %v", err)
		}
	})

	t.Run("Persistence failure keeps memory untouched", func(t *testing.T) {
		store := &memStore{}
		reg := newRegistry(t, store, usecase.Options{})
		store.saveErr = errors.New("disk full")

		_, err := reg.Register(ctx, 5)
		if !errors.Is(err, registry.ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
		if _, ok := reg.FindByChat(ctx, 5); ok {
			t.Errorf("binding must not be visible after a failed save")
		}
	})
}

func TestRegisterConcurrent(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	reg := newRegistry(t, store, usecase.Options{})

	const workers = 32
	tokens := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok, err := reg.Register(ctx, 77)
			if err != nil {
				t.Errorf("register: %v", err)
				return
			}
			tokens[i] = tok
			reg.FindByToken(ctx, tok)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if tokens[i] != tokens[0] {
			t.Fatalf("worker %d got token %q, worker 0 got %q", i, tokens[i], tokens[0])
		}
	}
	state, saves := store.snapshot()
	if len(state.Chats) != 1 || saves != 1 {
		t.Errorf("expected one binding and one save, got %d binding(s), %d save(s)", len(state.Chats), saves)
	}
}

func TestUnregister(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes every binding of the chat", func(t *testing.T) {
		store := &memStore{state: model.State{Chats: map[string]int64{
			"old-1": 9,
			"old-2": 9,
			"other": 10,
		}}}
		reg := newRegistry(t, store, usecase.Options{})

		if err := reg.Unregister(ctx, 9); err != nil {
			t.Fatalf("unregister: %v", err)
		}
		if _, ok := reg.FindByChat(ctx, 9); ok {
			t.Errorf("chat 9 still bound")
		}
		if _, ok := reg.FindByToken(ctx, "other"); !ok {
			t.Errorf("unrelated binding was removed")
		}
		state, _ := store.snapshot()
		if len(state.Chats) != 1 {
			t.Errorf("expected persisted state with one binding, got %v", state.Chats)
		}
	})

	t.Run("Unknown chat is a no-op", func(t *testing.T) {
		reg := newRegistry(t, &memStore{}, usecase.Options{})
		if err := reg.Unregister(ctx, 404); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := reg.Unregister(ctx, 404); err != nil {
			t.Fatalf("unexpected error on repeat: %v", err)
		}
	})

	t.Run("Register after unregister mints a new token", func(t *testing.T) {
		reg := newRegistry(t, &memStore{}, usecase.Options{})
		first, _ := reg.Register(ctx, 3)
		if err := reg.Unregister(ctx, 3); err != nil {
			t.Fatal(err)
		}
		second, _ := reg.Register(ctx, 3)
		if first == second {
			t.Errorf("token %q was reused", first)
		}
		if _, ok := reg.FindByToken(ctx, first); ok {
			t.Errorf("old token still resolves")
		}
	})

	t.Run("Persistence failure keeps memory untouched", func(t *testing.T) {
		store := &memStore{state: model.State{Chats: map[string]int64{"keep": 1}}}
		reg := newRegistry(t, store, usecase.Options{})
		store.saveErr = errors.New("read-only filesystem")

		if err := reg.Unregister(ctx, 1); !errors.Is(err, registry.ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
		if _, ok := reg.FindByToken(ctx, "keep"); !ok {
			t.Errorf("binding dropped despite failed save")
		}
	})
}

func TestLookups(t *testing.T) {
	ctx := context.Background()
	store := &memStore{state: model.State{
		BaseURL:  "https://relay.example.com/hooks/{uuid}",
		BotToken: "123:abc",
		Chats:    map[string]int64{"b-token": 5, "a-token": 5},
	}}
	reg := newRegistry(t, store, usecase.Options{})

	if b, ok := reg.FindByChat(ctx, 5); !ok || b.Token != "a-token" {
		t.Errorf("expected deterministic a-token binding, got %+v (found=%v)", b, ok)
	}
	if _, ok := reg.FindByToken(ctx, ""); ok {
		t.Errorf("empty token must not resolve")
	}
	if _, ok := reg.FindByToken(ctx, "missing"); ok {
		t.Errorf("unknown token must not resolve")
	}
	if got := reg.WebhookURL("a-token"); got != "https://relay.example.com/hooks/a-token" {
		t.Errorf("unexpected webhook url %q", got)
	}
	if reg.BotToken() != "123:abc" {
		t.Errorf("unexpected bot token %q", reg.BotToken())
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("Load failure", func(t *testing.T) {
		store := &memStore{loadErr: errors.New("permission denied")}
		if _, err := usecase.New(ctx, store, &mockLogger{}, metrics.New(nil), usecase.Options{}); err == nil {
			t.Fatal("expected load error")
		}
	})

	t.Run("Seeds empty fields and persists them", func(t *testing.T) {
		store := &memStore{}
		newRegistry(t, store, usecase.Options{BaseURL: "https://x/{uuid}", BotToken: "tok"})

		state, saves := store.snapshot()
		if saves != 1 || state.BaseURL != "https://x/{uuid}" || state.BotToken != "tok" {
			t.Errorf("expected seeded state saved once, got %+v after %d save(s)", state, saves)
		}
	})

	t.Run("Existing fields win over seeds", func(t *testing.T) {
		store := &memStore{state: model.State{BaseURL: "https://kept/{uuid}", BotToken: "kept"}}
		reg := newRegistry(t, store, usecase.Options{BaseURL: "https://x/{uuid}", BotToken: "tok"})

		if _, saves := store.snapshot(); saves != 0 {
			t.Errorf("expected no save, got %d", saves)
		}
		if reg.BotToken() != "kept" || reg.WebhookURL("t") != "https://kept/t" {
			t.Errorf("seed overwrote stored fields")
		}
	})
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	store := &memStore{state: model.State{Chats: map[string]int64{"a-token": 1, "b-token": 2}}}
	uc, err := usecase.New(ctx, store, &mockLogger{}, metrics.New(nil), usecase.Options{NewToken: func() string { return "c-token" }})
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}

	if got := uc.Count(ctx); got != 2 {
		t.Fatalf("expected 2 bindings, got %d", got)
	}
	if _, err := uc.Register(ctx, 3); err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := uc.Count(ctx); got != 3 {
		t.Errorf("expected 3 bindings after register, got %d", got)
	}
	if err := uc.Unregister(ctx, 1); err != nil {
		t.Fatalf("unregister: %v", err)
	}
	if got := uc.Count(ctx); got != 2 {
		t.Errorf("expected 2 bindings after unregister, got %d", got)
	}
}
