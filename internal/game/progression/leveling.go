// Package progression implements the pure mechanics of the player
// progression engine: leveling, acting mastery, ascension, crafting and
// expedition outcome math. Functions here mutate only the player record
// they are handed; persistence and precondition checks live in the app
// layer.
package progression

import "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"

// maxXPGrowth is the per-level difficulty multiplier, applied with
// truncation so the curve stays integral: 100, 120, 144, 172, ...
const maxXPGrowth = 1.2

// statPointLevelInterval grants bonus points on every level divisible by it.
const statPointLevelInterval = 5

// GainXP adds experience and resolves every resulting level-up in one call.
//
// The loop keeps the invariant xp < maxXp: each level consumes the current
// threshold, grows the next one by 20% (rounded down), and every fifth
// level grants two characteristic points. A large grant can advance several
// levels at once, each applying growth and bonus independently.
func GainXP(p *domain.Player, amount int) (leveledUp bool, newLevel int) {
	p.XP += amount
	for p.XP >= p.MaxXP {
		p.XP -= p.MaxXP
		p.Level++
		p.MaxXP = int(float64(p.MaxXP) * maxXPGrowth)
		if p.Level%statPointLevelInterval == 0 {
			p.StatPoints += 2
		}
		leveledUp = true
	}
	return leveledUp, p.Level
}
