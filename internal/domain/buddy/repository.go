package buddy

import (
	"context"
	"errors"
)

// ErrNoData is returned by Load when the backend has never been written to.
var ErrNoData = errors.New("no saved data")

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// ══════════════════════════════════════════════════════════════════════════════

// Repository persists the whole aggregate as one unit.
// Implementations live in the infrastructure layer (JSON file, SQLite, PostgreSQL, Redis).
type Repository interface {
	// Load returns the last saved aggregate, or ErrNoData if nothing was saved yet.
	Load(ctx context.Context) (*Buddy, error)

	// Save replaces the stored aggregate with b.
	Save(ctx context.Context, b *Buddy) error
}
