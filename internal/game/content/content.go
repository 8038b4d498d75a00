// Package content loads and serves the read-only reference data: item,
// effect and recipe catalogs plus the pathway definitions. The engine never
// mutates this data; it is loaded once at startup.
package content

import (
	"sort"
	"strconv"
	"strings"
)

// Item is one entry of the item catalog.
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Effects     []string `json:"effects,omitempty"`
}

// Effect is one entry of the effect catalog, referenced by items.
type Effect struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Recipe is one craftable entry. Ingredients map item ids to required counts.
type Recipe struct {
	Name        string         `json:"name"`
	Ingredients map[string]int `json:"ingredients"`
}

// SequenceTier is one rank of a pathway: its title and granted abilities.
type SequenceTier struct {
	Name      string   `json:"name"`
	Abilities []string `json:"abilities,omitempty"`
}

// Pathway is one character class: ten tiers indexed "9" (civilian entry)
// down to "0" (pinnacle).
type Pathway struct {
	Name      string                  `json:"name"`
	Sequences map[string]SequenceTier `json:"sequences"`
}

// Tier returns the tier data for a sequence number.
func (p Pathway) Tier(sequence int) (SequenceTier, bool) {
	tier, ok := p.Sequences[strconv.Itoa(sequence)]
	return tier, ok
}

// Content is the loaded reference data set.
type Content struct {
	items    map[string]Item
	itemIDs  []string
	effects  map[string]Effect
	recipes  map[string]map[string]Recipe
	pathways map[string]Pathway
}

// New builds a Content from already-decoded tables. Load is the usual
// constructor; New exists for tests and seeding.
func New(items map[string]Item, effects map[string]Effect, recipes map[string]map[string]Recipe, pathways map[string]Pathway) *Content {
	if items == nil {
		items = map[string]Item{}
	}
	if effects == nil {
		effects = map[string]Effect{}
	}
	if recipes == nil {
		recipes = map[string]map[string]Recipe{}
	}
	if pathways == nil {
		pathways = map[string]Pathway{}
	}

	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Content{
		items:    items,
		itemIDs:  ids,
		effects:  effects,
		recipes:  recipes,
		pathways: pathways,
	}
}

// ItemIDs returns every item id in sorted order. The order is the contract
// for uniform random item grants.
func (c *Content) ItemIDs() []string {
	return c.itemIDs
}

// Item looks up an item by id.
func (c *Content) Item(id string) (Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// ItemName returns the display name for an item id, falling back to the id
// itself for unknown entries.
func (c *Content) ItemName(id string) string {
	if item, ok := c.items[id]; ok {
		return item.Name
	}
	return id
}

// ItemByName looks up an item by display name, case-insensitively.
func (c *Content) ItemByName(name string) (string, Item, bool) {
	for _, id := range c.itemIDs {
		item := c.items[id]
		if strings.EqualFold(item.Name, name) {
			return id, item, true
		}
	}
	return "", Item{}, false
}

// Effect looks up an effect by id.
func (c *Content) Effect(id string) (Effect, bool) {
	effect, ok := c.effects[id]
	return effect, ok
}

// EffectName returns the display name for an effect id, falling back to the
// id itself.
func (c *Content) EffectName(id string) string {
	if effect, ok := c.effects[id]; ok {
		return effect.Name
	}
	return id
}

// Recipe looks up a recipe inside a category.
func (c *Content) Recipe(category, id string) (Recipe, bool) {
	recipe, ok := c.recipes[category][id]
	return recipe, ok
}

// RecipeCategories returns the recipe category ids in sorted order.
func (c *Content) RecipeCategories() []string {
	categories := make([]string, 0, len(c.recipes))
	for category := range c.recipes {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// RecipesIn returns the recipe ids of a category in sorted order.
func (c *Content) RecipesIn(category string) []string {
	ids := make([]string, 0, len(c.recipes[category]))
	for id := range c.recipes[category] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Pathway looks up a pathway by its exact name.
func (c *Content) Pathway(name string) (Pathway, bool) {
	pathway, ok := c.pathways[name]
	return pathway, ok
}

// PathwayByName looks up a pathway case-insensitively, for player input.
func (c *Content) PathwayByName(name string) (Pathway, bool) {
	for _, pathway := range c.pathways {
		if strings.EqualFold(pathway.Name, name) {
			return pathway, true
		}
	}
	return Pathway{}, false
}

// PathwayNames returns every loaded pathway name in sorted order.
func (c *Content) PathwayNames() []string {
	names := make([]string, 0, len(c.pathways))
	for name := range c.pathways {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
