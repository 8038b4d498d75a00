package progression

import "sort"

// ConsumeIngredients verifies a recipe's ingredient multiset against the
// inventory and, when everything is present, returns the reduced inventory.
//
// Verification runs against a working copy, removing matched units as it
// goes, so a recipe that lists the same ingredient twice cannot double-count
// a single unit. On the first missing ingredient it reports the ingredient
// id and its required count and the caller's inventory stays untouched:
// consumption is all-or-nothing. Ingredients are checked in sorted id order
// so the reported shortage is deterministic.
func ConsumeIngredients(inventory []string, ingredients map[string]int) (remaining []string, missingID string, needed int, ok bool) {
	working := make([]string, len(inventory))
	copy(working, inventory)

	ids := make([]string, 0, len(ingredients))
	for id := range ingredients {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		count := ingredients[id]
		for unit := 0; unit < count; unit++ {
			if !removeOne(&working, id) {
				return nil, id, count, false
			}
		}
	}
	return working, "", 0, true
}

func removeOne(inventory *[]string, id string) bool {
	for i, have := range *inventory {
		if have == id {
			*inventory = append((*inventory)[:i], (*inventory)[i+1:]...)
			return true
		}
	}
	return false
}
