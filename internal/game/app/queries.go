package app

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/content"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/progression"
	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// Profile is the read-only player snapshot with derived progress figures.
type Profile struct {
	ID            string         `json:"id"`
	Balance       int            `json:"balance"`
	BalanceText   string         `json:"balance_text"`
	Pathway       string         `json:"pathway"`
	Sequence      int            `json:"sequence"`
	ActingName    string         `json:"acting_name"`
	Affiliation   string         `json:"affiliation"`
	Level         int            `json:"level"`
	XP            int            `json:"xp"`
	MaxXP         int            `json:"max_xp"`
	XPPercent     float64        `json:"xp_percent"`
	ActingXP      int            `json:"acting_xp"`
	ActingMaxXP   int            `json:"acting_max_xp"`
	ActingPercent float64        `json:"acting_percent"`
	ActingMastery int            `json:"acting_mastery"`
	MasteryRank   int            `json:"mastery_rank"`
	Sanity        int            `json:"sanity"`
	Stats         map[string]int `json:"stats"`
	StatPoints    int            `json:"stat_points"`
}

// Profile returns the player snapshot, vivifying a default record for an
// unknown id without persisting it.
func (s *Service) Profile(ctx context.Context, playerID string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return Profile{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	return buildProfile(playerID, player), nil
}

func buildProfile(playerID string, player domain.Player) Profile {
	xpPercent := 0.0
	if player.MaxXP > 0 {
		xpPercent = float64(player.XP) / float64(player.MaxXP) * 100
	}
	return Profile{
		ID:            playerID,
		Balance:       player.Balance,
		BalanceText:   formatPence(player.Balance),
		Pathway:       player.Pathway,
		Sequence:      player.Sequence,
		ActingName:    player.ActingName,
		Affiliation:   player.Affiliation,
		Level:         player.Level,
		XP:            player.XP,
		MaxXP:         player.MaxXP,
		XPPercent:     xpPercent,
		ActingXP:      player.ActingXP,
		ActingMaxXP:   player.ActingMaxXP,
		ActingPercent: player.ActingPercent(),
		ActingMastery: player.ActingMastery,
		MasteryRank:   progression.MasteryRank(player.ActingMastery),
		Sanity:        player.Sanity,
		Stats:         player.Stats,
		StatPoints:    player.StatPoints,
	}
}

// NPCSnapshot returns the casino NPC ledger.
func (s *Service) NPCSnapshot(ctx context.Context) (domain.NPC, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	npc, err := s.store.GetOrCreateNPC(ctx, domain.WillAuceptinID, domain.NewWillAuceptin())
	if err != nil {
		return domain.NPC{}, apperrors.Wrap(apperrors.CodeUnknown, "load npc", err)
	}
	return npc, nil
}

// ListPathways returns the loaded pathway names in sorted order.
func (s *Service) ListPathways(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.content.PathwayNames(), nil
}

// Abilities describes the player's current tier.
type Abilities struct {
	Pathway   string   `json:"pathway"`
	Sequence  int      `json:"sequence"`
	Title     string   `json:"title"`
	Abilities []string `json:"abilities"`
}

// Abilities returns the abilities granted by the player's current sequence
// tier.
func (s *Service) Abilities(ctx context.Context, playerID string) (Abilities, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return Abilities{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	if !player.HasPathway() {
		return Abilities{}, apperrors.New(apperrors.CodeNoPathway, "no pathway chosen")
	}
	pathway, ok := s.content.Pathway(player.Pathway)
	if !ok {
		return Abilities{}, apperrors.WithMetadata(apperrors.CodePathwayNotFound,
			fmt.Sprintf("pathway %q is not defined", player.Pathway),
			map[string]string{"Pathway": player.Pathway})
	}
	tier, ok := pathway.Tier(player.Sequence)
	if !ok {
		return Abilities{}, apperrors.WithMetadata(apperrors.CodeSequenceUndefined,
			fmt.Sprintf("sequence %d is not defined for %s", player.Sequence, pathway.Name),
			map[string]string{
				"Pathway":  pathway.Name,
				"Sequence": strconv.Itoa(player.Sequence),
			})
	}
	return Abilities{
		Pathway:   pathway.Name,
		Sequence:  player.Sequence,
		Title:     tier.Name,
		Abilities: tier.Abilities,
	}, nil
}

// InventoryEntry is one distinct item held by a player.
type InventoryEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// InventorySummary returns the player's inventory grouped by item, sorted
// by item id.
func (s *Service) InventorySummary(ctx context.Context, playerID string) ([]InventoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}

	counts := make(map[string]int)
	for _, id := range player.Inventory {
		counts[id]++
	}
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]InventoryEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, InventoryEntry{
			ID:    id,
			Name:  s.content.ItemName(id),
			Count: counts[id],
		})
	}
	return entries, nil
}

// ItemInfo describes one catalog item with its resolved effects.
type ItemInfo struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Effects     []EffectInfo `json:"effects,omitempty"`
}

// EffectInfo is one resolved item effect.
type EffectInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemInfo looks an item up by display name, falling back to id.
func (s *Service) ItemInfo(ctx context.Context, query string) (ItemInfo, error) {
	if err := ctx.Err(); err != nil {
		return ItemInfo{}, err
	}

	id, item, ok := s.content.ItemByName(query)
	if !ok {
		id = query
		item, ok = s.content.Item(query)
	}
	if !ok {
		return ItemInfo{}, apperrors.WithMetadata(apperrors.CodeItemNotFound,
			fmt.Sprintf("item %q is not in the catalog", query),
			map[string]string{"Item": query})
	}

	info := ItemInfo{ID: id, Name: item.Name, Description: item.Description}
	for _, effectID := range item.Effects {
		effect, ok := s.content.Effect(effectID)
		if !ok {
			continue
		}
		info.Effects = append(info.Effects, EffectInfo{
			ID:          effectID,
			Name:        effect.Name,
			Description: effect.Description,
		})
	}
	return info, nil
}

// IngredientLine is one resolved ingredient requirement.
type IngredientLine struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RecipeEntry is one craftable recipe with resolved ingredient names.
type RecipeEntry struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Ingredients []IngredientLine `json:"ingredients"`
}

// RecipeCategory groups the recipes of one category.
type RecipeCategory struct {
	Category string        `json:"category"`
	Recipes  []RecipeEntry `json:"recipes"`
}

// RecipeBook returns every recipe grouped by category, categories and
// recipes in sorted order.
func (s *Service) RecipeBook(ctx context.Context) ([]RecipeCategory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	categories := s.content.RecipeCategories()
	book := make([]RecipeCategory, 0, len(categories))
	for _, category := range categories {
		group := RecipeCategory{Category: category}
		for _, id := range s.content.RecipesIn(category) {
			recipe, ok := s.content.Recipe(category, id)
			if !ok {
				continue
			}
			entry := RecipeEntry{ID: id, Name: recipe.Name}
			entry.Ingredients = resolveIngredients(s.content, recipe.Ingredients)
			group.Recipes = append(group.Recipes, entry)
		}
		book = append(book, group)
	}
	return book, nil
}

func resolveIngredients(c *content.Content, ingredients map[string]int) []IngredientLine {
	ids := make([]string, 0, len(ingredients))
	for id := range ingredients {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]IngredientLine, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, IngredientLine{
			ID:    id,
			Name:  c.ItemName(id),
			Count: ingredients[id],
		})
	}
	return lines
}
