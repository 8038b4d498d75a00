package progression

import (
	"math/rand"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/core/dice"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"
)

// Sanity cost ranges for ascension. Full acting completion narrows the
// draw to the stabilized range; anything less risks the wild one.
const (
	stabilizedCostMin = 10
	stabilizedCostMax = 35
	unstableCostMin   = 20
	unstableCostMax   = 75
)

// actingMaxXPBase and actingMaxXPStep define how the acting requirement
// grows per tier descended: 200 at sequence 9, +100 for every tier below.
const (
	actingMaxXPBase = 200
	actingMaxXPStep = 100
)

// AscensionSanityCost draws the sanity cost of ascending at the given
// acting completion percentage. Completing the role before ascending
// lowers both the floor and the ceiling of the loss.
func AscensionSanityCost(rng *rand.Rand, actingPercent float64) int {
	if actingPercent >= 100 {
		return dice.Between(rng, stabilizedCostMin, stabilizedCostMax)
	}
	return dice.Between(rng, unstableCostMin, unstableCostMax)
}

// ActingMaxXPFor returns the acting requirement for a sequence tier.
func ActingMaxXPFor(sequence int) int {
	return actingMaxXPBase + (domain.SequenceCivilian-sequence)*actingMaxXPStep
}

// ApplyAscension commits a fully validated ascension: consumes one unit of
// the potion, moves the player to the target tier, resets acting progress
// and mastery for the new role, grows the acting requirement, and applies
// the sanity cost. Every second tier descended grants one characteristic
// point; the return value reports whether this tier did.
//
// Callers must have verified the preconditions (pathway set, target tier
// defined, potion present) before calling; ApplyAscension is the single
// mutation point of the state machine.
func ApplyAscension(p *domain.Player, target int, title, potionID string, sanityCost int) (statPointGranted bool) {
	p.RemoveItem(potionID)
	p.Sequence = target
	p.ActingName = title
	p.ActingXP = 0
	p.ActingMastery = 0
	p.ActingMaxXP = ActingMaxXPFor(target)
	p.LoseSanity(sanityCost)

	if (domain.SequenceCivilian-target)%2 == 0 {
		p.StatPoints++
		return true
	}
	return false
}
