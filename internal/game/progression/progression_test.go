package progression

import (
	"math/rand"
	"testing"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"
)

func TestGainXPMultipleLevels(t *testing.T) {
	p := domain.NewPlayer()

	leveledUp, newLevel := GainXP(&p, 250)

	if !leveledUp {
		t.Fatalf("leveledUp = false, want true")
	}
	if newLevel != 3 {
		t.Fatalf("newLevel = %d, want 3", newLevel)
	}
	if p.XP != 30 {
		t.Fatalf("XP = %d, want 30", p.XP)
	}
	if p.MaxXP != 144 {
		t.Fatalf("MaxXP = %d, want 144", p.MaxXP)
	}
}

func TestGainXPNoLevel(t *testing.T) {
	p := domain.NewPlayer()

	leveledUp, newLevel := GainXP(&p, 99)

	if leveledUp {
		t.Fatalf("leveledUp = true, want false")
	}
	if newLevel != 1 || p.XP != 99 || p.MaxXP != 100 {
		t.Fatalf("got level %d xp %d maxXp %d, want 1 99 100", newLevel, p.XP, p.MaxXP)
	}
}

func TestGainXPStatPointsEveryFifthLevel(t *testing.T) {
	p := domain.NewPlayer()
	before := p.StatPoints

	// Enough to cross level 5 but not level 10.
	GainXP(&p, 800)

	if p.Level < 5 || p.Level >= 10 {
		t.Fatalf("Level = %d, want in [5,10)", p.Level)
	}
	if got := p.StatPoints - before; got != 2 {
		t.Fatalf("stat points gained = %d, want 2", got)
	}
}

func TestGainXPInvariant(t *testing.T) {
	p := domain.NewPlayer()
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		GainXP(&p, rng.Intn(500))
		if p.XP >= p.MaxXP {
			t.Fatalf("iteration %d: xp %d >= maxXp %d", i, p.XP, p.MaxXP)
		}
	}
}

func TestMasteryRank(t *testing.T) {
	cases := []struct {
		count int
		rank  int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{7, 2},
		{14, 2},
		{15, 3},
		{30, 4},
		{50, 5},
		{999, 5},
	}
	for _, tc := range cases {
		if got := MasteryRank(tc.count); got != tc.rank {
			t.Errorf("MasteryRank(%d) = %d, want %d", tc.count, got, tc.rank)
		}
	}
}

func TestActRewardScalesWithRank(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		base := ActReward(rng, 0)
		if base < actRewardMin || base > actRewardMax {
			t.Fatalf("rank 0 reward %d outside [%d,%d]", base, actRewardMin, actRewardMax)
		}
	}
	// Rank 2 adds a full extra base: every draw doubles.
	rng = rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		reward := ActReward(rng, 2)
		if reward < 2*actRewardMin || reward > 2*actRewardMax {
			t.Fatalf("rank 2 reward %d outside [%d,%d]", reward, 2*actRewardMin, 2*actRewardMax)
		}
	}
}

func TestAscensionSanityCostRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		cost := AscensionSanityCost(rng, 100)
		if cost < stabilizedCostMin || cost > stabilizedCostMax {
			t.Fatalf("stabilized cost %d outside [%d,%d]", cost, stabilizedCostMin, stabilizedCostMax)
		}
	}
	for i := 0; i < 200; i++ {
		cost := AscensionSanityCost(rng, 40)
		if cost < unstableCostMin || cost > unstableCostMax {
			t.Fatalf("unstable cost %d outside [%d,%d]", cost, unstableCostMin, unstableCostMax)
		}
	}
}

func TestActingMaxXPFor(t *testing.T) {
	cases := []struct {
		sequence int
		want     int
	}{
		{9, 200},
		{8, 300},
		{5, 600},
		{0, 1100},
	}
	for _, tc := range cases {
		if got := ActingMaxXPFor(tc.sequence); got != tc.want {
			t.Errorf("ActingMaxXPFor(%d) = %d, want %d", tc.sequence, got, tc.want)
		}
	}
}

func TestApplyAscension(t *testing.T) {
	p := domain.NewPlayer()
	p.Pathway = "Fool"
	p.Inventory = []string{"seer_potion", "seer_potion"}
	p.ActingXP = 150
	p.ActingMastery = 4
	points := p.StatPoints

	granted := ApplyAscension(&p, 8, "Clown", "seer_potion", 12)

	if p.Sequence != 8 {
		t.Fatalf("Sequence = %d, want 8", p.Sequence)
	}
	if p.ActingName != "Clown" {
		t.Fatalf("ActingName = %q, want Clown", p.ActingName)
	}
	if p.ActingXP != 0 || p.ActingMastery != 0 {
		t.Fatalf("acting progress not reset: xp %d mastery %d", p.ActingXP, p.ActingMastery)
	}
	if p.ActingMaxXP != 300 {
		t.Fatalf("ActingMaxXP = %d, want 300", p.ActingMaxXP)
	}
	if p.Sanity != domain.SanityMax-12 {
		t.Fatalf("Sanity = %d, want %d", p.Sanity, domain.SanityMax-12)
	}
	if got := p.CountItem("seer_potion"); got != 1 {
		t.Fatalf("potion count = %d, want 1", got)
	}
	// Sequence 8 is the first tier descended; no point yet.
	if granted || p.StatPoints != points {
		t.Fatalf("unexpected stat point at sequence 8")
	}

	p.AddItem("clown_potion")
	granted = ApplyAscension(&p, 7, "Magician", "clown_potion", 10)
	if !granted || p.StatPoints != points+1 {
		t.Fatalf("sequence 7 should grant one stat point, got granted=%v points=%d", granted, p.StatPoints)
	}
}

func TestConsumeIngredients(t *testing.T) {
	inventory := []string{"herb", "vial", "herb", "dust"}

	remaining, missing, needed, ok := ConsumeIngredients(inventory, map[string]int{"herb": 2, "vial": 1})
	if !ok {
		t.Fatalf("craft failed: missing %q x%d", missing, needed)
	}
	if len(remaining) != 1 || remaining[0] != "dust" {
		t.Fatalf("remaining = %v, want [dust]", remaining)
	}
	if len(inventory) != 4 {
		t.Fatalf("input inventory mutated: %v", inventory)
	}
}

func TestConsumeIngredientsNoDoubleCounting(t *testing.T) {
	_, missing, needed, ok := ConsumeIngredients([]string{"herb"}, map[string]int{"herb": 2})
	if ok {
		t.Fatalf("single unit satisfied a two-unit requirement")
	}
	if missing != "herb" || needed != 2 {
		t.Fatalf("got missing %q x%d, want herb x2", missing, needed)
	}
}

func TestConsumeIngredientsAtomic(t *testing.T) {
	inventory := []string{"herb", "vial"}
	_, missing, _, ok := ConsumeIngredients(inventory, map[string]int{"herb": 1, "zeal": 1})
	if ok {
		t.Fatalf("craft succeeded despite missing ingredient")
	}
	if missing != "zeal" {
		t.Fatalf("missing = %q, want zeal", missing)
	}
	if len(inventory) != 2 {
		t.Fatalf("inventory consumed on failure: %v", inventory)
	}
}

func TestFailureSanityLoss(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	sawCritical := false
	for i := 0; i < 2000; i++ {
		loss := FailureSanityLoss(rng)
		if loss < 6 || loss >= 20 {
			t.Fatalf("loss %d outside [6,20)", loss)
		}
		if IsCriticalLoss(loss) {
			sawCritical = true
			if loss < CriticalLossThreshold {
				t.Fatalf("loss %d flagged critical below threshold", loss)
			}
		}
	}
	if !sawCritical {
		t.Fatalf("no critical loss in 2000 draws")
	}
}
