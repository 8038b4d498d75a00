// Package migrate heals persisted player documents written under older
// schema versions into the current shape.
//
// Steps run in a fixed order against the decoded JSON document. Every step
// is pure and idempotent: it only fills gaps or renames retired fields,
// never reduces a value that is already present, so applying the full list
// twice is a no-op the second time.
package migrate

import "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"

// BonusTable maps a pathway name to its fixed characteristic bonuses,
// used to backfill stats for records that predate the characteristics
// system.
type BonusTable map[string]map[string]int

type step struct {
	name  string
	apply func(doc map[string]any, bonuses BonusTable) bool
}

var steps = []step{
	{"level-xp-consolidation", consolidateLevelXP},
	{"characteristics-backfill", backfillCharacteristics},
	{"field-defaults", fillDefaults},
}

// Apply runs every migration step against the document in order and reports
// whether any step changed it.
func Apply(doc map[string]any, bonuses BonusTable) bool {
	changed := false
	for _, s := range steps {
		if s.apply(doc, bonuses) {
			changed = true
		}
	}
	return changed
}

// consolidateLevelXP splits the legacy combined ascension counter into the
// level/xp pair and deletes the retired fields.
func consolidateLevelXP(doc map[string]any, _ BonusTable) bool {
	changed := false
	if _, ok := doc["level"]; !ok {
		doc["level"] = 1
		changed = true
	}
	if _, ok := doc["xp"]; !ok {
		doc["xp"] = intValue(doc, "ascension_xp", 0)
		changed = true
	}
	if _, ok := doc["max_xp"]; !ok {
		doc["max_xp"] = intValue(doc, "ascension_max_xp", domain.DefaultMaxXP)
		changed = true
	}
	if _, ok := doc["ascension_xp"]; ok {
		delete(doc, "ascension_xp")
		changed = true
	}
	if _, ok := doc["ascension_max_xp"]; ok {
		delete(doc, "ascension_max_xp")
		changed = true
	}
	return changed
}

// backfillCharacteristics initialises the stat block for records that
// predate the characteristics system, retroactively applying the pathway
// bonuses and the points earned from sequences ascended before the system
// existed.
func backfillCharacteristics(doc map[string]any, bonuses BonusTable) bool {
	if _, ok := doc["stats"]; ok {
		return false
	}

	stats := make(map[string]any, len(domain.StatKeys))
	for _, key := range domain.StatKeys {
		stats[key] = 1
	}

	if pathway, ok := doc["pathway"].(string); ok && pathway != "" {
		for stat, bonus := range bonuses[pathway] {
			stats[stat] = intOf(stats[stat]) + bonus
		}
		seqLevels := domain.SequenceCivilian - intValue(doc, "sequence", domain.SequenceCivilian)
		doc["stat_points"] = domain.DefaultStatPoints + seqLevels/2
	}

	doc["stats"] = stats
	return true
}

// fillDefaults backfills every remaining field with its hardcoded default.
func fillDefaults(doc map[string]any, _ BonusTable) bool {
	defaults := map[string]any{
		"balance":        domain.DefaultBalance,
		"sequence":       domain.SequenceCivilian,
		"acting_name":    domain.CivilianTitle,
		"acting_xp":      0,
		"acting_max_xp":  domain.DefaultActingMaxXP,
		"acting_mastery": 0,
		"sanity":         domain.SanityMax,
		"inventory":      []any{},
		"stat_points":    domain.DefaultStatPoints,
		"affiliation":    domain.AffiliationNeutral,
	}

	changed := false
	for key, value := range defaults {
		if _, ok := doc[key]; !ok {
			doc[key] = value
			changed = true
		}
	}
	if _, ok := doc["pathway"]; !ok {
		doc["pathway"] = nil
		changed = true
	}
	return changed
}

// intValue reads an integer field from the document, tolerating the float64
// values produced by JSON decoding.
func intValue(doc map[string]any, key string, fallback int) int {
	value, ok := doc[key]
	if !ok {
		return fallback
	}
	return intOf(value)
}

func intOf(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
