// Package dice implements the random draws behind game outcomes.
//
// Every function takes an explicit *rand.Rand so that, given the same seeded
// source and the same call sequence, outcomes are fully deterministic. The
// service layer owns the production source (crypto-seeded); tests inject
// fixed seeds.
package dice

import "math/rand"

// Between returns a uniform integer in the inclusive range [lo, hi].
// lo and hi may be equal; Between panics if hi < lo, which indicates a
// programming error in the caller's reward table.
func Between(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		panic("dice: inverted range")
	}
	return lo + rng.Intn(hi-lo+1)
}

// Chance performs a Bernoulli draw that succeeds with probability p.
// p outside [0, 1] clamps to always-fail or always-succeed.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Duel is the outcome of two opposed uniform draws.
type Duel struct {
	Challenger int
	Opponent   int
	// Margin is Challenger - Opponent: positive is a win, zero a tie.
	Margin int
}

// Contest draws once for each side from the same inclusive range, challenger
// first. The draw order is part of the deterministic contract.
func Contest(rng *rand.Rand, lo, hi int) Duel {
	challenger := Between(rng, lo, hi)
	opponent := Between(rng, lo, hi)
	return Duel{
		Challenger: challenger,
		Opponent:   opponent,
		Margin:     challenger - opponent,
	}
}
