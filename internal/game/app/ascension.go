package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/core/cooldown"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/content"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/progression"
	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// AdvanceResult reports a committed ascension.
type AdvanceResult struct {
	Sequence         int    `json:"sequence"`
	Title            string `json:"title"`
	PotionID         string `json:"potion_id"`
	SanityCost       int    `json:"sanity_cost"`
	Sanity           int    `json:"sanity"`
	StatPointGranted bool   `json:"stat_point_granted"`
	ActingMaxXP      int    `json:"acting_max_xp"`
}

// Advance moves the player one sequence tier down their pathway. It
// requires the next tier's potion in the inventory and charges a sanity
// cost scaled by how much of the current role was acted out. Nothing is
// written until every precondition holds.
func (s *Service) Advance(ctx context.Context, playerID string) (AdvanceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return AdvanceResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	if !player.HasPathway() {
		return AdvanceResult{}, apperrors.New(apperrors.CodeNoPathway, "no pathway chosen")
	}
	if player.Sequence <= domain.SequencePinnacle {
		return AdvanceResult{}, apperrors.New(apperrors.CodeSequenceAtPinnacle, "already at the pinnacle")
	}
	pathway, ok := s.content.Pathway(player.Pathway)
	if !ok {
		return AdvanceResult{}, apperrors.WithMetadata(apperrors.CodePathwayNotFound,
			fmt.Sprintf("pathway %q is not defined", player.Pathway),
			map[string]string{"Pathway": player.Pathway})
	}
	target := player.Sequence - 1
	tier, ok := pathway.Tier(target)
	if !ok {
		return AdvanceResult{}, apperrors.WithMetadata(apperrors.CodeSequenceUndefined,
			fmt.Sprintf("sequence %d is not defined for %s", target, pathway.Name),
			map[string]string{
				"Pathway":  pathway.Name,
				"Sequence": strconv.Itoa(target),
			})
	}
	potionID, ok := content.FindPotion(player.Inventory, tier.Name)
	if !ok {
		slug := content.PotionSlug(tier.Name)
		return AdvanceResult{}, apperrors.WithMetadata(apperrors.CodeMissingPotion,
			fmt.Sprintf("missing the %s potion (%s)", tier.Name, slug),
			map[string]string{"Title": tier.Name, "Potion": slug})
	}

	sanityCost := progression.AscensionSanityCost(s.rng, player.ActingPercent())
	granted := progression.ApplyAscension(&player, target, tier.Name, potionID, sanityCost)

	if err := s.store.PutPlayer(ctx, playerID, player); err != nil {
		return AdvanceResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save player", err)
	}
	return AdvanceResult{
		Sequence:         player.Sequence,
		Title:            player.ActingName,
		PotionID:         potionID,
		SanityCost:       sanityCost,
		Sanity:           player.Sanity,
		StatPointGranted: granted,
		ActingMaxXP:      player.ActingMaxXP,
	}, nil
}

// ActResult reports one acting session.
type ActResult struct {
	Reward        int     `json:"reward"`
	ActingXP      int     `json:"acting_xp"`
	ActingMaxXP   int     `json:"acting_max_xp"`
	ActingPercent float64 `json:"acting_percent"`
	ActingMastery int     `json:"acting_mastery"`
	MasteryRank   int     `json:"mastery_rank"`
	RankedUp      bool    `json:"ranked_up"`
	Lore          string  `json:"lore"`
}

// Act plays out the current role once per half day. Each session raises the
// cumulative mastery counter; crossing a mastery threshold raises the rank
// and every rank adds half the base reward again.
func (s *Service) Act(ctx context.Context, playerID string) (ActResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return ActResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	if !player.HasPathway() {
		return ActResult{}, apperrors.New(apperrors.CodeNoPathway, "no pathway chosen")
	}
	now := s.now()
	if cdErr := checkCooldown(player.LastAct, ActCooldown, now, "act"); cdErr != nil {
		return ActResult{}, cdErr
	}

	rankBefore := progression.MasteryRank(player.ActingMastery)
	player.ActingMastery++
	rank := progression.MasteryRank(player.ActingMastery)

	reward := progression.ActReward(s.rng, rank)
	player.GainActingXP(reward)
	player.LastAct = cooldown.Mark(now)

	pool := content.ActLore(player.ActingName)
	lore := pool[s.rng.Intn(len(pool))]

	if err := s.store.PutPlayer(ctx, playerID, player); err != nil {
		return ActResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save player", err)
	}
	return ActResult{
		Reward:        reward,
		ActingXP:      player.ActingXP,
		ActingMaxXP:   player.ActingMaxXP,
		ActingPercent: player.ActingPercent(),
		ActingMastery: player.ActingMastery,
		MasteryRank:   rank,
		RankedUp:      rank > rankBefore,
		Lore:          lore,
	}, nil
}
