// Package sqlite provides a SQLite-backed game storage implementation.
//
// Records are stored as JSON documents keyed by id, one table per
// collection. Player documents are healed on read: older shapes pass
// through the migration steps and the healed document is written back, so
// a record is upgraded at most once.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain/migrate"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/storage"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/storage/sqlite/migrations"
	sqlitemigrate "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store persists game state in SQLite.
type Store struct {
	sqlDB   *sql.DB
	bonuses migrate.BonusTable
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite game store and applies embedded migrations. The
// bonus table feeds the on-read document healing for records written
// before characteristics existed.
func Open(path string, bonuses migrate.BonusTable) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, bonuses: bonuses}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetPlayer returns one healed player record.
func (s *Store) GetPlayer(ctx context.Context, id string) (domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return domain.Player{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Player{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Player{}, fmt.Errorf("player id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT document FROM players WHERE id = ?`, id)
	var document string
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, fmt.Errorf("get player: %w", err)
	}
	return s.healPlayer(ctx, id, document)
}

// GetOrCreatePlayer returns one healed player record, or a fresh default
// record when none exists. The default is not written back.
func (s *Store) GetOrCreatePlayer(ctx context.Context, id string) (domain.Player, error) {
	player, err := s.GetPlayer(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.NewPlayer(), nil
	}
	return player, err
}

// healPlayer runs the stored document through the migration steps and
// writes the healed version back when anything changed. A document that
// cannot be decoded at all is replaced with a fresh default record.
func (s *Store) healPlayer(ctx context.Context, id, document string) (domain.Player, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(document), &doc); err != nil || doc == nil {
		fresh := domain.NewPlayer()
		if err := s.PutPlayer(ctx, id, fresh); err != nil {
			return domain.Player{}, fmt.Errorf("replace corrupt player: %w", err)
		}
		return fresh, nil
	}

	changed := migrate.Apply(doc, s.bonuses)

	encoded, err := json.Marshal(doc)
	if err != nil {
		return domain.Player{}, fmt.Errorf("encode healed player: %w", err)
	}
	var player domain.Player
	if err := json.Unmarshal(encoded, &player); err != nil {
		return domain.Player{}, fmt.Errorf("decode player: %w", err)
	}
	if player.Inventory == nil {
		player.Inventory = []string{}
	}

	if changed {
		if err := s.writePlayer(ctx, id, string(encoded)); err != nil {
			return domain.Player{}, fmt.Errorf("write back healed player: %w", err)
		}
	}
	return player, nil
}

// PutPlayer writes one player record, replacing any previous version.
func (s *Store) PutPlayer(ctx context.Context, id string, player domain.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("player id is required")
	}
	encoded, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("encode player: %w", err)
	}
	return s.writePlayer(ctx, id, string(encoded))
}

func (s *Store) writePlayer(ctx context.Context, id, document string) error {
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO players (id, document, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		id,
		document,
		toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("put player: %w", err)
	}
	return nil
}

// GetOrCreateNPC returns one NPC record, or the fallback when none exists.
func (s *Store) GetOrCreateNPC(ctx context.Context, id string, fallback domain.NPC) (domain.NPC, error) {
	if err := ctx.Err(); err != nil {
		return domain.NPC{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.NPC{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.NPC{}, fmt.Errorf("npc id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT document FROM npcs WHERE id = ?`, id)
	var document string
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fallback, nil
		}
		return domain.NPC{}, fmt.Errorf("get npc: %w", err)
	}
	var npc domain.NPC
	if err := json.Unmarshal([]byte(document), &npc); err != nil {
		return fallback, nil
	}
	return npc, nil
}

// PutNPC writes one NPC record, replacing any previous version.
func (s *Store) PutNPC(ctx context.Context, id string, npc domain.NPC) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("npc id is required")
	}
	encoded, err := json.Marshal(npc)
	if err != nil {
		return fmt.Errorf("encode npc: %w", err)
	}
	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO npcs (id, document, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		id,
		string(encoded),
		toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("put npc: %w", err)
	}
	return nil
}

// ResetAll deletes every player and NPC record.
func (s *Store) ResetAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("reset players: %w", err)
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM npcs`); err != nil {
		return fmt.Errorf("reset npcs: %w", err)
	}
	return nil
}

var _ storage.Store = (*Store)(nil)
