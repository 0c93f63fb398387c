package yamlfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github-relay-bot/internal/model"
	"github-relay-bot/internal/registry/repository"
)

const fileMode = 0o600

// Load reads the state file. A missing file yields an empty state.
func (r *implRepository) Load(ctx context.Context) (model.State, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.l.Warnf(ctx, "yamlfile.Load: %s does not exist, starting with an empty registry", r.path)
			return model.State{Chats: map[string]int64{}}, nil
		}
		return model.State{}, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.State{}, fmt.Errorf("%w: parse %s: %v", repository.ErrFailedToLoad, r.path, err)
	}

	state := model.State{
		BaseURL:  doc.GitHubBot.BaseURL,
		BotToken: doc.GitHubBot.Token,
		Chats:    doc.GitHubBot.Chats,
	}
	if state.Chats == nil {
		state.Chats = map[string]int64{}
	}
	return state, nil
}

// Save rewrites the whole file: the document goes to a temp file in the same
// directory, is fsynced, then renamed over the old file.
func (r *implRepository) Save(ctx context.Context, state model.State) error {
	chats := state.Chats
	if chats == nil {
		chats = map[string]int64{}
	}
	data, err := yaml.Marshal(document{GitHubBot: section{
		BaseURL: state.BaseURL,
		Token:   state.BotToken,
		Chats:   chats,
	}})
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", repository.ErrFailedToSave, err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("%w: write: %v", repository.ErrFailedToSave, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("%w: sync: %v", repository.ErrFailedToSave, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: close: %v", repository.ErrFailedToSave, err)
	}
	if err := os.Chmod(tmpName, fileMode); err != nil {
		cleanup()
		return fmt.Errorf("%w: chmod: %v", repository.ErrFailedToSave, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		cleanup()
		return fmt.Errorf("%w: rename: %v", repository.ErrFailedToSave, err)
	}

	r.l.Debugf(ctx, "yamlfile.Save: wrote %d binding(s) to %s", len(chats), r.path)
	return nil
}
