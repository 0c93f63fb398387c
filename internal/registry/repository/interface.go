package repository

import (
	"context"

	"github-relay-bot/internal/model"
)

// Store is the load/save contract for the registry state.
// Save must replace the durable record as a whole or leave it untouched.
type Store interface {
	Load(ctx context.Context) (model.State, error)
	Save(ctx context.Context, state model.State) error
}
