package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/content"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/progression"
	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// CraftResult reports one crafted item.
type CraftResult struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Category string `json:"category"`
}

// Craft consumes a recipe's ingredients and adds the crafted item. An
// empty category scans every category for the recipe id. Consumption is
// all-or-nothing: the first missing ingredient aborts the craft with the
// ingredient and its required count, leaving the inventory untouched.
func (s *Service) Craft(ctx context.Context, playerID, category, recipeID string) (CraftResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, recipe, ok := s.findRecipe(category, recipeID)
	if !ok {
		return CraftResult{}, apperrors.WithMetadata(apperrors.CodeRecipeNotFound,
			fmt.Sprintf("no recipe for %q", recipeID),
			map[string]string{"Recipe": recipeID})
	}

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return CraftResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}

	remaining, missingID, needed, ok := progression.ConsumeIngredients(player.Inventory, recipe.Ingredients)
	if !ok {
		name := s.content.ItemName(missingID)
		return CraftResult{}, apperrors.WithMetadata(apperrors.CodeMissingIngredient,
			fmt.Sprintf("missing %d x %s", needed, name),
			map[string]string{
				"Ingredient": name,
				"Count":      strconv.Itoa(needed),
			})
	}
	player.Inventory = remaining
	player.AddItem(recipeID)

	if err := s.store.PutPlayer(ctx, playerID, player); err != nil {
		return CraftResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save player", err)
	}
	return CraftResult{
		ItemID:   recipeID,
		ItemName: s.content.ItemName(recipeID),
		Category: category,
	}, nil
}

// findRecipe resolves a recipe id, scanning the categories in sorted
// order when none is named.
func (s *Service) findRecipe(category, recipeID string) (string, content.Recipe, bool) {
	if category != "" {
		recipe, ok := s.content.Recipe(category, recipeID)
		return category, recipe, ok
	}
	for _, candidate := range s.content.RecipeCategories() {
		if recipe, ok := s.content.Recipe(candidate, recipeID); ok {
			return candidate, recipe, true
		}
	}
	return "", content.Recipe{}, false
}
