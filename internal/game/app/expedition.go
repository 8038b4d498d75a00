package app

import (
	"context"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/core/cooldown"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/core/dice"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/content"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/progression"
	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// ExpeditionResult reports one resolved expedition.
type ExpeditionResult struct {
	Success      bool   `json:"success"`
	Reward       int    `json:"reward"`
	RewardText   string `json:"reward_text,omitempty"`
	XPGained     int    `json:"xp_gained"`
	ActingGained int    `json:"acting_gained"`
	SanityLost   int    `json:"sanity_lost"`
	Critical     bool   `json:"critical"`
	ItemID       string `json:"item_id,omitempty"`
	ItemName     string `json:"item_name,omitempty"`
	LeveledUp    bool   `json:"leveled_up"`
	Level        int    `json:"level"`
	Balance      int    `json:"balance"`
	Sanity       int    `json:"sanity"`
	Lore         string `json:"lore"`
}

// Expedition sends the player into the wilds once every three hours. Most
// runs succeed and pay out money, experience, acting progress and one
// catalog item for a small sanity toll. Failures pay nothing and cost more
// sanity; the worst of them are critical and draw from a darker narrative
// pool.
func (s *Service) Expedition(ctx context.Context, playerID string) (ExpeditionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return ExpeditionResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	if !player.HasPathway() {
		return ExpeditionResult{}, apperrors.New(apperrors.CodeNoPathway, "no pathway chosen")
	}
	now := s.now()
	if cdErr := checkCooldown(player.LastExpedition, ExpeditionCooldown, now, "expedition"); cdErr != nil {
		return ExpeditionResult{}, cdErr
	}

	var result ExpeditionResult
	if dice.Chance(s.rng, progression.ExpeditionSuccessRate) {
		reward := dice.Between(s.rng, progression.ExpeditionRewardMin, progression.ExpeditionRewardMax)
		xp := dice.Between(s.rng, progression.ExpeditionXPMin, progression.ExpeditionXPMax)
		acting := dice.Between(s.rng, progression.ExpeditionActingMin, progression.ExpeditionActingMax)
		sanity := dice.Between(s.rng, progression.ExpeditionSanityMin, progression.ExpeditionSanityMax)

		player.Balance += reward
		leveledUp, level := progression.GainXP(&player, xp)
		player.GainActingXP(acting)
		player.LoseSanity(sanity)

		result = ExpeditionResult{
			Success:      true,
			Reward:       reward,
			RewardText:   formatPence(reward),
			XPGained:     xp,
			ActingGained: acting,
			SanityLost:   sanity,
			LeveledUp:    leveledUp,
			Level:        level,
		}
		if itemID, ok := s.drawItem(); ok {
			player.AddItem(itemID)
			result.ItemID = itemID
			result.ItemName = s.content.ItemName(itemID)
		}
	} else {
		loss := progression.FailureSanityLoss(s.rng)
		player.LoseSanity(loss)
		result = ExpeditionResult{
			SanityLost: loss,
			Critical:   progression.IsCriticalLoss(loss),
			Level:      player.Level,
		}
	}

	pool := content.FailureLore
	if result.Success {
		pool = nil
	} else if result.Critical {
		pool = content.CriticalLore
	}
	if pool != nil {
		result.Lore = pool[s.rng.Intn(len(pool))]
	}

	player.LastExpedition = cooldown.Mark(now)
	if err := s.store.PutPlayer(ctx, playerID, player); err != nil {
		return ExpeditionResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save player", err)
	}
	result.Balance = player.Balance
	result.Sanity = player.Sanity
	return result, nil
}
