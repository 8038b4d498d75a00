package content

import "strings"

// PotionSlug derives the canonical consumable id for a tier title:
// lowercase, spaces to underscores, "_potion" suffix. "Solar High Priest"
// becomes "solar_high_priest_potion".
func PotionSlug(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_") + "_potion"
}

// FindPotion resolves the consumable required to ascend into the tier with
// the given title. The contract is two-stage: first an exact match on the
// canonical slug, then a scan for any inventory entry whose id contains both
// the folded title and the substring "potion". Returns the matched inventory
// id, or false when neither stage matches.
func FindPotion(inventory []string, title string) (string, bool) {
	slug := PotionSlug(title)
	for _, id := range inventory {
		if id == slug {
			return id, true
		}
	}

	folded := strings.ToLower(title)
	for _, id := range inventory {
		lowered := strings.ToLower(id)
		if strings.Contains(lowered, folded) && strings.Contains(lowered, "potion") {
			return id, true
		}
	}
	return "", false
}
