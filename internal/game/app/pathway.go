package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/content"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"
	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// ChoosePathwayResult reports a committed pathway choice.
type ChoosePathwayResult struct {
	Pathway     string         `json:"pathway"`
	Title       string         `json:"title"`
	Affiliation string         `json:"affiliation"`
	Bonuses     map[string]int `json:"bonuses,omitempty"`
}

// ChoosePathway binds the player to a pathway. The choice is one-shot:
// once a pathway is set it can never change. Matching is case-insensitive
// against the loaded pathway names. The tier-9 title becomes the acting
// role and the pathway's fixed characteristic bonuses apply immediately.
func (s *Service) ChoosePathway(ctx context.Context, playerID, name string) (ChoosePathwayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return ChoosePathwayResult{}, apperrors.New(apperrors.CodePathwayNameEmpty, "pathway name is required")
	}

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return ChoosePathwayResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	if player.HasPathway() {
		return ChoosePathwayResult{}, apperrors.WithMetadata(apperrors.CodePathwayAlreadySet,
			fmt.Sprintf("pathway already set to %s", player.Pathway),
			map[string]string{"Pathway": player.Pathway})
	}
	pathway, ok := s.content.PathwayByName(name)
	if !ok {
		return ChoosePathwayResult{}, apperrors.WithMetadata(apperrors.CodePathwayNotFound,
			fmt.Sprintf("pathway %q is not defined", name),
			map[string]string{"Pathway": name})
	}

	player.Pathway = pathway.Name
	player.Sequence = domain.SequenceCivilian
	if tier, ok := pathway.Tier(domain.SequenceCivilian); ok {
		player.ActingName = tier.Name
	}
	if player.Affiliation == domain.AffiliationNeutral {
		player.Affiliation = domain.AffiliationUnofficial
	}
	bonuses := content.PathwayBonuses[pathway.Name]
	for stat, bonus := range bonuses {
		player.Stats[stat] += bonus
	}

	if err := s.store.PutPlayer(ctx, playerID, player); err != nil {
		return ChoosePathwayResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save player", err)
	}
	return ChoosePathwayResult{
		Pathway:     pathway.Name,
		Title:       player.ActingName,
		Affiliation: player.Affiliation,
		Bonuses:     bonuses,
	}, nil
}

// StatResult reports one allocation or refund.
type StatResult struct {
	Stat      string `json:"stat"`
	Name      string `json:"name"`
	Value     int    `json:"value"`
	Remaining int    `json:"remaining"`
}

// AllocateStat spends one unallocated point on a characteristic.
func (s *Service) AllocateStat(ctx context.Context, playerID, stat string) (StatResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stat = strings.ToUpper(strings.TrimSpace(stat))
	if !domain.IsStatKey(stat) {
		return StatResult{}, apperrors.WithMetadata(apperrors.CodeStatUnknown,
			fmt.Sprintf("unknown characteristic %q", stat),
			map[string]string{"Stat": stat})
	}

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return StatResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	if player.StatPoints < 1 {
		return StatResult{}, apperrors.New(apperrors.CodeNoStatPoints, "no characteristic points left")
	}

	player.Stats[stat]++
	player.StatPoints--

	if err := s.store.PutPlayer(ctx, playerID, player); err != nil {
		return StatResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save player", err)
	}
	return StatResult{
		Stat:      stat,
		Name:      domain.StatNames[stat],
		Value:     player.Stats[stat],
		Remaining: player.StatPoints,
	}, nil
}

// RefundStat reverses one allocation, returning the point. A characteristic
// never drops below 1.
func (s *Service) RefundStat(ctx context.Context, playerID, stat string) (StatResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stat = strings.ToUpper(strings.TrimSpace(stat))
	if !domain.IsStatKey(stat) {
		return StatResult{}, apperrors.WithMetadata(apperrors.CodeStatUnknown,
			fmt.Sprintf("unknown characteristic %q", stat),
			map[string]string{"Stat": stat})
	}

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return StatResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	if player.Stats[stat] <= 1 {
		return StatResult{}, apperrors.WithMetadata(apperrors.CodeStatAtMinimum,
			fmt.Sprintf("%s is already at its minimum", stat),
			map[string]string{"Stat": stat})
	}

	player.Stats[stat]--
	player.StatPoints++

	if err := s.store.PutPlayer(ctx, playerID, player); err != nil {
		return StatResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save player", err)
	}
	return StatResult{
		Stat:      stat,
		Name:      domain.StatNames[stat],
		Value:     player.Stats[stat],
		Remaining: player.StatPoints,
	}, nil
}
