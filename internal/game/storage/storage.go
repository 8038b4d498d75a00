// Package storage defines persistence contracts for player and NPC records.
package storage

import (
	"context"
	"errors"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Store persists game records. GetOrCreate variants return a record with
// the full default schema when none exists yet; they do not write the
// default back, so a player who never acts leaves no row behind.
type Store interface {
	// GetPlayer returns the stored player record, healed to the current
	// schema. It returns ErrNotFound when no record exists.
	GetPlayer(ctx context.Context, id string) (domain.Player, error)
	// GetOrCreatePlayer returns the stored player record, healed to the
	// current schema, or a fresh default record when none exists.
	GetOrCreatePlayer(ctx context.Context, id string) (domain.Player, error)
	// PutPlayer writes the player record, replacing any previous version.
	PutPlayer(ctx context.Context, id string, player domain.Player) error
	// GetOrCreateNPC returns the stored NPC record or the given default
	// when none exists.
	GetOrCreateNPC(ctx context.Context, id string, fallback domain.NPC) (domain.NPC, error)
	// PutNPC writes the NPC record, replacing any previous version.
	PutNPC(ctx context.Context, id string, npc domain.NPC) error
	// ResetAll deletes every player and NPC record.
	ResetAll(ctx context.Context) error
	// Close releases the underlying database handle.
	Close() error
}
