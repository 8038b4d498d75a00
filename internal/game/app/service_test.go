package app

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/content"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"
	sqlitestore "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/storage/sqlite"
	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// testClock is an adjustable time source.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func testContent() *content.Content {
	items := map[string]content.Item{
		"herb":          {Name: "Moonflower Herb", Description: "A pale herb."},
		"vial":          {Name: "Glass Vial", Description: "An empty vial."},
		"clown_potion":  {Name: "Clown Potion", Description: "Sequence 8 potion.", Effects: []string{"vertigo"}},
		"mystic_elixir": {Name: "Mystic Elixir", Description: "A crafted draught."},
	}
	effects := map[string]content.Effect{
		"vertigo": {Name: "Vertigo", Description: "The world tilts."},
	}
	recipes := map[string]map[string]content.Recipe{
		"potions": {
			"mystic_elixir": {
				Name:        "Mystic Elixir",
				Ingredients: map[string]int{"herb": 2, "vial": 1},
			},
		},
	}
	pathways := map[string]content.Pathway{
		"Fool": {
			Name: "Fool",
			Sequences: map[string]content.SequenceTier{
				"9": {Name: "Seer", Abilities: []string{"Spirit Vision", "Divination"}},
				"8": {Name: "Clown", Abilities: []string{"Paper Figurine Substitutes"}},
				"7": {Name: "Magician", Abilities: []string{"Flame Jump"}},
			},
		},
	}
	return content.New(items, effects, recipes, pathways)
}

func newTestService(t *testing.T, seed int64) (*Service, *testClock) {
	t.Helper()
	store, err := sqlitestore.Open(filepath.Join(t.TempDir(), "game.db"), content.PathwayBonuses)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	clock := &testClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	svc, err := New(store, testContent(),
		WithRand(rand.New(rand.NewSource(seed))),
		WithClock(clock.Now),
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, clock
}

func TestProfileDefaults(t *testing.T) {
	svc, _ := newTestService(t, 1)

	profile, err := svc.Profile(context.Background(), "alice")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Balance != domain.DefaultBalance {
		t.Fatalf("Balance = %d, want %d", profile.Balance, domain.DefaultBalance)
	}
	if profile.Sequence != domain.SequenceCivilian || profile.ActingName != domain.CivilianTitle {
		t.Fatalf("got sequence %d title %q, want civilian defaults", profile.Sequence, profile.ActingName)
	}
	if profile.BalanceText != "10 Soli" {
		t.Fatalf("BalanceText = %q, want 10 Soli", profile.BalanceText)
	}
}

func TestChoosePathway(t *testing.T) {
	svc, _ := newTestService(t, 1)
	ctx := context.Background()

	result, err := svc.ChoosePathway(ctx, "alice", "fool")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if result.Pathway != "Fool" || result.Title != "Seer" {
		t.Fatalf("got %+v, want Fool/Seer", result)
	}
	if result.Affiliation != domain.AffiliationUnofficial {
		t.Fatalf("Affiliation = %q, want %q", result.Affiliation, domain.AffiliationUnofficial)
	}

	profile, err := svc.Profile(ctx, "alice")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Stats["INT"] != 1+3 || profile.Stats["POW"] != 1+2 {
		t.Fatalf("bonuses not applied: INT %d POW %d", profile.Stats["INT"], profile.Stats["POW"])
	}

	if _, err := svc.ChoosePathway(ctx, "alice", "Fool"); !apperrors.IsCode(err, apperrors.CodePathwayAlreadySet) {
		t.Fatalf("second choose err = %v, want PATHWAY_ALREADY_SET", err)
	}
	if _, err := svc.ChoosePathway(ctx, "bob", "Moon"); !apperrors.IsCode(err, apperrors.CodePathwayNotFound) {
		t.Fatalf("unknown pathway err = %v, want PATHWAY_NOT_FOUND", err)
	}
	if _, err := svc.ChoosePathway(ctx, "bob", "  "); !apperrors.IsCode(err, apperrors.CodePathwayNameEmpty) {
		t.Fatalf("blank pathway err = %v, want PATHWAY_NAME_EMPTY", err)
	}
}

func TestAllocateAndRefundStat(t *testing.T) {
	svc, _ := newTestService(t, 1)
	ctx := context.Background()

	result, err := svc.AllocateStat(ctx, "alice", "pow")
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if result.Stat != "POW" || result.Value != 2 || result.Remaining != domain.DefaultStatPoints-1 {
		t.Fatalf("allocate result = %+v", result)
	}

	refunded, err := svc.RefundStat(ctx, "alice", "POW")
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	if refunded.Value != 1 || refunded.Remaining != domain.DefaultStatPoints {
		t.Fatalf("refund result = %+v", refunded)
	}

	if _, err := svc.RefundStat(ctx, "alice", "POW"); !apperrors.IsCode(err, apperrors.CodeStatAtMinimum) {
		t.Fatalf("refund at minimum err = %v, want STAT_AT_MINIMUM", err)
	}
	if _, err := svc.AllocateStat(ctx, "alice", "LCK"); !apperrors.IsCode(err, apperrors.CodeStatUnknown) {
		t.Fatalf("unknown stat err = %v, want STAT_UNKNOWN", err)
	}
}

func TestWorkCooldown(t *testing.T) {
	svc, clock := newTestService(t, 2)
	ctx := context.Background()

	result, err := svc.Work(ctx, "alice")
	if err != nil {
		t.Fatalf("work: %v", err)
	}
	if result.Earned < 10 || result.Earned > 20 {
		t.Fatalf("Earned = %d, want in [10,20]", result.Earned)
	}
	if result.Balance != domain.DefaultBalance+result.Earned {
		t.Fatalf("Balance = %d, want %d", result.Balance, domain.DefaultBalance+result.Earned)
	}
	if result.XPGained != 5 {
		t.Fatalf("XPGained = %d, want 5", result.XPGained)
	}

	_, err = svc.Work(ctx, "alice")
	if !apperrors.IsCode(err, apperrors.CodeCooldownActive) {
		t.Fatalf("immediate rework err = %v, want COOLDOWN_ACTIVE", err)
	}
	meta := apperrors.GetMetadata(err)
	if meta["Action"] != "work" || meta["Remaining"] == "" {
		t.Fatalf("cooldown metadata = %v", meta)
	}

	clock.Advance(WorkCooldown)
	if _, err := svc.Work(ctx, "alice"); err != nil {
		t.Fatalf("work after window: %v", err)
	}
}

func TestDaily(t *testing.T) {
	svc, clock := newTestService(t, 3)
	ctx := context.Background()

	result, err := svc.Daily(ctx, "alice")
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if result.Earned != 120 || result.XPGained != 50 || result.ActingGained != 15 {
		t.Fatalf("daily rewards = %+v", result)
	}
	if result.ItemID == "" || result.ItemName == "" {
		t.Fatalf("daily granted no item: %+v", result)
	}
	if result.Balance != domain.DefaultBalance+120 {
		t.Fatalf("Balance = %d, want %d", result.Balance, domain.DefaultBalance+120)
	}

	if _, err := svc.Daily(ctx, "alice"); !apperrors.IsCode(err, apperrors.CodeCooldownActive) {
		t.Fatalf("immediate daily err = %v, want COOLDOWN_ACTIVE", err)
	}
	clock.Advance(DailyCooldown)
	if _, err := svc.Daily(ctx, "alice"); err != nil {
		t.Fatalf("daily after window: %v", err)
	}
}

func TestCasinoValidation(t *testing.T) {
	svc, _ := newTestService(t, 4)
	ctx := context.Background()

	if _, err := svc.Casino(ctx, "alice", 0, false); !apperrors.IsCode(err, apperrors.CodeWagerInvalid) {
		t.Fatalf("zero wager err = %v, want WAGER_INVALID", err)
	}
	if _, err := svc.Casino(ctx, "alice", domain.DefaultBalance+1, false); !apperrors.IsCode(err, apperrors.CodeInsufficientFunds) {
		t.Fatalf("oversize wager err = %v, want INSUFFICIENT_FUNDS", err)
	}
}

func TestCasinoLedger(t *testing.T) {
	svc, _ := newTestService(t, 5)
	ctx := context.Background()

	const wager = 5
	balance := domain.DefaultBalance
	losses := 0
	for i := 0; i < 20; i++ {
		result, err := svc.Casino(ctx, "alice", wager, false)
		if err != nil {
			t.Fatalf("duel %d: %v", i, err)
		}
		if result.PlayerRoll < 2 || result.PlayerRoll > 12 || result.NPCRoll < 2 || result.NPCRoll > 12 {
			t.Fatalf("rolls out of range: %+v", result)
		}
		switch result.Outcome {
		case CasinoWin:
			balance += wager
		case CasinoLoss:
			balance -= wager
			losses++
		case CasinoTie:
		default:
			t.Fatalf("unknown outcome %q", result.Outcome)
		}
		if result.Balance != balance {
			t.Fatalf("duel %d: balance %d, want %d", i, result.Balance, balance)
		}
		if result.NPC.Bankroll != losses*wager || result.NPC.Wins != losses {
			t.Fatalf("duel %d: npc ledger %+v, want bankroll %d wins %d", i, result.NPC, losses*wager, losses)
		}
	}

	npc, err := svc.NPCSnapshot(ctx)
	if err != nil {
		t.Fatalf("npc snapshot: %v", err)
	}
	if npc.Wins != losses {
		t.Fatalf("persisted wins = %d, want %d", npc.Wins, losses)
	}
}

func TestCasinoAllInLossLandsOnZero(t *testing.T) {
	ctx := context.Background()
	// Scan seeds for one that makes the challenger lose the first duel so
	// the all-in path is exercised deterministically.
	for seed := int64(0); seed < 64; seed++ {
		svc, _ := newTestService(t, seed)
		result, err := svc.Casino(ctx, "alice", 0, true)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if result.Wager != domain.DefaultBalance {
			t.Fatalf("all-in wager = %d, want %d", result.Wager, domain.DefaultBalance)
		}
		if result.Outcome == CasinoLoss {
			if result.Balance != 0 {
				t.Fatalf("all-in loss balance = %d, want 0", result.Balance)
			}
			return
		}
	}
	t.Fatalf("no losing seed found")
}
