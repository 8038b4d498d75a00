package progression

import "math/rand"

// Expedition outcome constants.
const (
	// ExpeditionSuccessRate is the probability of a successful expedition.
	ExpeditionSuccessRate = 0.7

	// CriticalLossThreshold classifies a failure as critical.
	CriticalLossThreshold = 18

	failureLossBase = 6
	failureLossSpan = 14
)

// Reward ranges for a successful expedition.
const (
	ExpeditionRewardMin = 120
	ExpeditionRewardMax = 480
	ExpeditionXPMin     = 20
	ExpeditionXPMax     = 40
	ExpeditionActingMin = 5
	ExpeditionActingMax = 15
	ExpeditionSanityMin = 3
	ExpeditionSanityMax = 5
)

// FailureSanityLoss draws the sanity cost of a failed expedition. Squaring
// the uniform draw skews losses toward the low end with a heavy tail toward
// 20: most failures are mild, a minority severe. The result is always in
// [6, 20).
func FailureSanityLoss(rng *rand.Rand) int {
	u := rng.Float64()
	return failureLossBase + int(failureLossSpan*u*u)
}

// IsCriticalLoss reports whether a failure loss selects from the critical
// narrative pool.
func IsCriticalLoss(loss int) bool {
	return loss >= CriticalLossThreshold
}
