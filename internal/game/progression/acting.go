package progression

import (
	"math/rand"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/core/dice"
)

// MasteryThresholds are the cumulative act counts that raise the mastery
// rank: reaching 3 acts is rank 1, 7 is rank 2, and so on.
var MasteryThresholds = []int{3, 7, 15, 30, 50}

// Acting reward base range.
const (
	actRewardMin = 20
	actRewardMax = 35
)

// MasteryRank returns how many thresholds the cumulative act count meets.
func MasteryRank(actingMastery int) int {
	rank := 0
	for _, threshold := range MasteryThresholds {
		if actingMastery >= threshold {
			rank++
		}
	}
	return rank
}

// ActReward draws the acting XP reward for one act at the given mastery
// rank. Each rank adds a flat +50% of the random base, so the reward scales
// in discrete steps rather than continuously.
func ActReward(rng *rand.Rand, rank int) int {
	base := dice.Between(rng, actRewardMin, actRewardMax)
	return base + base*rank/2
}
