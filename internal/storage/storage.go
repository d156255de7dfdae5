package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/ventureworks/hustle-engine/pkg/state"
)

// Storage persists game sessions between commands. The content catalog is
// not stored here; it is loaded from the filesystem at startup and shared
// read-only.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error

	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error)
	DeleteGameState(ctx context.Context, id uuid.UUID) error
}
