package yamlfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github-relay-bot/internal/model"
	"github-relay-bot/internal/registry/repository"
	"github-relay-bot/internal/registry/repository/yamlfile"
	"github-relay-bot/pkg/log"
)

func TestLoadMissingFile(t *testing.T) {
	store := yamlfile.New(filepath.Join(t.TempDir(), "missing.yaml"), log.NewNop())

	state, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Chats == nil || len(state.Chats) != 0 {
		t.Errorf("expected empty chats map, got %v", state.Chats)
	}
}

func TestLoadOriginalLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github-bot.yaml")
	raw := `github-bot:
  baseurl: https://relay.example.com/hooks/{uuid}
  token: "123456:ABC"
  chats:
    1b4e28ba-2fa1-11d2-883f-0016d3cca427: -100123
    6fa459ea-ee8a-3ca4-894e-db77e160355e: 42
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	state, err := yamlfile.New(path, log.NewNop()).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.BaseURL != "https://relay.example.com/hooks/{uuid}" {
		t.Errorf("unexpected base url %q", state.BaseURL)
	}
	if state.BotToken != "123456:ABC" {
		t.Errorf("unexpected bot token %q", state.BotToken)
	}
	if state.Chats["1b4e28ba-2fa1-11d2-883f-0016d3cca427"] != -100123 || state.Chats["6fa459ea-ee8a-3ca4-894e-db77e160355e"] != 42 {
		t.Errorf("unexpected chats %v", state.Chats)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("github-bot: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := yamlfile.New(path, log.NewNop()).Load(context.Background())
	if !errors.Is(err, repository.ErrFailedToLoad) {
		t.Fatalf("expected ErrFailedToLoad, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "github-bot.yaml")
	store := yamlfile.New(path, log.NewNop())
	ctx := context.Background()

	want := model.State{
		BaseURL:  "https://relay.example.com/hooks/{uuid}",
		BotToken: "123456:ABC",
		Chats: map[string]int64{
			"1b4e28ba-2fa1-11d2-883f-0016d3cca427": -100123,
			"6fa459ea-ee8a-3ca4-894e-db77e160355e": 42,
		},
	}

	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the state file in %s, found %d entries", dir, len(entries))
	}
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github-bot.yaml")
	store := yamlfile.New(path, log.NewNop())
	ctx := context.Background()

	if err := store.Save(ctx, model.State{Chats: map[string]int64{"a": 1, "b": 2}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, model.State{Chats: map[string]int64{"b": 2}}); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Chats) != 1 || got.Chats["b"] != 2 {
		t.Errorf("expected only binding b, got %v", got.Chats)
	}
}

func TestSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "github-bot.yaml")
	err := yamlfile.New(path, log.NewNop()).Save(context.Background(), model.State{})
	if !errors.Is(err, repository.ErrFailedToSave) {
		t.Fatalf("expected ErrFailedToSave, got %v", err)
	}
}
