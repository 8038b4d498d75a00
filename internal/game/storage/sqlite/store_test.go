package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain/migrate"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/storage"
)

var testBonuses = migrate.BonusTable{
	"Fool": {"POW": 3, "DEX": 2, "APP": 1},
}

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.db")
	store, err := Open(path, testBonuses)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  ", nil); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

func TestPlayerRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	player := domain.NewPlayer()
	player.Pathway = "Fool"
	player.Balance = 777
	player.Inventory = []string{"seer_potion"}
	if err := store.PutPlayer(ctx, "alice", player); err != nil {
		t.Fatalf("put player: %v", err)
	}

	got, err := store.GetPlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Pathway != "Fool" || got.Balance != 777 {
		t.Fatalf("got pathway %q balance %d, want Fool 777", got.Pathway, got.Balance)
	}
	if len(got.Inventory) != 1 || got.Inventory[0] != "seer_potion" {
		t.Fatalf("inventory = %v", got.Inventory)
	}
}

func TestGetPlayerMissing(t *testing.T) {
	store, _ := openTestStore(t)

	if _, err := store.GetPlayer(context.Background(), "nobody"); err != storage.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetOrCreatePlayerDefaultNotPersisted(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	player, err := store.GetOrCreatePlayer(ctx, "bob")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if player.Balance != domain.DefaultBalance || player.Sequence != domain.SequenceCivilian {
		t.Fatalf("got balance %d sequence %d, want defaults", player.Balance, player.Sequence)
	}

	// Reading a default record must not create a row.
	if _, err := store.GetPlayer(ctx, "bob"); err != storage.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func insertRawPlayer(t *testing.T, path, id, document string) {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	defer sqlDB.Close()
	_, err = sqlDB.Exec(
		`INSERT INTO players (id, document, updated_at) VALUES (?, ?, ?)`,
		id, document, time.Now().UnixMilli(),
	)
	if err != nil {
		t.Fatalf("insert raw player: %v", err)
	}
}

func TestLegacyPlayerHealedOnRead(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	legacy := `{"balance": 55, "pathway": "Fool", "sequence": 7, "acting_name": "Magician",
		"ascension_xp": 40, "ascension_max_xp": 120, "sanity": 80, "inventory": []}`
	insertRawPlayer(t, path, "carol", legacy)

	got, err := store.GetPlayer(ctx, "carol")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Level != 1 || got.XP != 40 || got.MaxXP != 120 {
		t.Fatalf("got level %d xp %d maxXp %d, want 1 40 120", got.Level, got.XP, got.MaxXP)
	}
	if got.Stats["POW"] != 1+3 {
		t.Fatalf("POW = %d, want pathway bonus applied", got.Stats["POW"])
	}
	// 10 base + (9-7)/2 retroactive ascension points.
	if got.StatPoints != 11 {
		t.Fatalf("StatPoints = %d, want 11", got.StatPoints)
	}

	// The healed document is written back: a second read must not need
	// healing and must return the same record.
	again, err := store.GetPlayer(ctx, "carol")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.XP != got.XP || again.StatPoints != got.StatPoints {
		t.Fatalf("second read differs: %+v vs %+v", again, got)
	}
}

func TestCorruptPlayerReplacedWithDefaults(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	insertRawPlayer(t, path, "mallory", `{not json`)

	got, err := store.GetPlayer(ctx, "mallory")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Balance != domain.DefaultBalance || got.Sanity != domain.SanityMax {
		t.Fatalf("corrupt record not replaced with defaults: %+v", got)
	}
}

func TestNPCFallbackAndRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	fallback := domain.NewWillAuceptin()
	npc, err := store.GetOrCreateNPC(ctx, domain.WillAuceptinID, fallback)
	if err != nil {
		t.Fatalf("get or create npc: %v", err)
	}
	if npc.Name != fallback.Name || npc.Bankroll != fallback.Bankroll {
		t.Fatalf("fallback not returned: %+v", npc)
	}

	npc.Bankroll += 36
	npc.Wins++
	if err := store.PutNPC(ctx, domain.WillAuceptinID, npc); err != nil {
		t.Fatalf("put npc: %v", err)
	}
	again, err := store.GetOrCreateNPC(ctx, domain.WillAuceptinID, fallback)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.Bankroll != npc.Bankroll || again.Wins != npc.Wins {
		t.Fatalf("got %+v, want %+v", again, npc)
	}
}

func TestResetAll(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.PutPlayer(ctx, "alice", domain.NewPlayer()); err != nil {
		t.Fatalf("put player: %v", err)
	}
	if err := store.PutNPC(ctx, domain.WillAuceptinID, domain.NewWillAuceptin()); err != nil {
		t.Fatalf("put npc: %v", err)
	}

	if err := store.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, err := store.GetPlayer(ctx, "alice"); err != storage.ErrNotFound {
		t.Fatalf("player survived reset: %v", err)
	}
	fallback := domain.NewWillAuceptin()
	npc, err := store.GetOrCreateNPC(ctx, domain.WillAuceptinID, fallback)
	if err != nil {
		t.Fatalf("get npc: %v", err)
	}
	if npc.Bankroll != fallback.Bankroll || npc.Wins != 0 {
		t.Fatalf("npc survived reset: %+v", npc)
	}
}
