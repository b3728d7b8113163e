package ports

import (
	"context"

	"github.com/randomtoy/change-game/internal/domain"
)

// GameStore keeps the games of active sessions.
type GameStore interface {
	// Create registers g under a new ID.
	Create(ctx context.Context, g *domain.Game) (string, error)
	// Update runs fn against the game with the given ID. Calls for the
	// same store never run concurrently.
	Update(ctx context.Context, id string, fn func(g *domain.Game)) (domain.Snapshot, error)
	// Get returns the current state of the game with the given ID.
	Get(ctx context.Context, id string) (domain.Snapshot, error)
	// Delete forgets the game with the given ID.
	Delete(ctx context.Context, id string) error
}
