// Package main writes a starter content directory: a small item, effect
// and recipe catalog plus two pathways, enough to exercise every game
// operation on a fresh install.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/content"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/config"
)

// Config holds seed command configuration.
type Config struct {
	ContentDir string `env:"WISHING_MACHINE_CONTENT_DIR" envDefault:"content"`
}

func main() {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("parse config: %v", err)
	}
	if err := seed(cfg.ContentDir); err != nil {
		config.Exitf("seed content: %v", err)
	}
	fmt.Printf("seeded content in %s\n", cfg.ContentDir)
}

func seed(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, content.PathwaysDir), 0o755); err != nil {
		return err
	}

	items := map[string]content.Item{
		"moonflower_herb": {
			Name:        "Moonflower Herb",
			Description: "A pale herb that only blooms under a full moon.",
		},
		"glass_vial": {
			Name:        "Glass Vial",
			Description: "A small stoppered vial of clouded glass.",
		},
		"spirit_pendulum": {
			Name:        "Spirit Pendulum",
			Description: "A dowsing pendulum tuned to the spirit world.",
			Effects:     []string{"divination_aid"},
		},
		"clown_potion": {
			Name:        "Clown Potion",
			Description: "The Sequence 8 potion of the Fool pathway.",
			Effects:     []string{"mental_shift"},
		},
		"magician_potion": {
			Name:        "Magician Potion",
			Description: "The Sequence 7 potion of the Fool pathway.",
			Effects:     []string{"mental_shift"},
		},
		"bard_potion": {
			Name:        "Bard Potion",
			Description: "The Sequence 8 potion of the Sun pathway.",
			Effects:     []string{"mental_shift"},
		},
	}

	effects := map[string]content.Effect{
		"divination_aid": {
			Name:        "Divination Aid",
			Description: "Sharpens spirit vision and dream divination.",
		},
		"mental_shift": {
			Name:        "Mental Shift",
			Description: "Rewrites the drinker's mind to fit a new role.",
		},
	}

	recipes := map[string]map[string]content.Recipe{
		"potions": {
			"clown_potion": {
				Name: "Clown Potion",
				Ingredients: map[string]int{
					"moonflower_herb": 2,
					"glass_vial":      1,
				},
			},
			"magician_potion": {
				Name: "Magician Potion",
				Ingredients: map[string]int{
					"moonflower_herb": 3,
					"glass_vial":      1,
				},
			},
		},
		"tools": {
			"spirit_pendulum": {
				Name: "Spirit Pendulum",
				Ingredients: map[string]int{
					"glass_vial": 2,
				},
			},
		},
	}

	pathways := []content.Pathway{
		{
			Name: "Fool",
			Sequences: map[string]content.SequenceTier{
				"9": {Name: "Seer", Abilities: []string{"Spirit Vision", "Divination", "Danger Intuition"}},
				"8": {Name: "Clown", Abilities: []string{"Paper Figurine Substitutes", "Enhanced Agility"}},
				"7": {Name: "Magician", Abilities: []string{"Flame Jump", "Air Bullet", "Illusion Craft"}},
			},
		},
		{
			Name: "Sun",
			Sequences: map[string]content.SequenceTier{
				"9": {Name: "Bard", Abilities: []string{"Inspiring Song", "Light Summoning"}},
				"8": {Name: "Light Suppliant", Abilities: []string{"Purification", "Holy Light"}},
				"7": {Name: "Solar High Priest", Abilities: []string{"Exorcism", "Blessing"}},
			},
		},
	}

	if err := writeJSON(filepath.Join(dir, content.ItemsFile), items); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, content.EffectsFile), effects); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, content.RecipesFile), recipes); err != nil {
		return err
	}
	for _, pathway := range pathways {
		file := filepath.Join(dir, content.PathwaysDir, slugFile(pathway.Name))
		if err := writeJSON(file, pathway); err != nil {
			return err
		}
	}
	return nil
}

func slugFile(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '_')
		default:
			out = append(out, r)
		}
	}
	return string(out) + ".json"
}

func writeJSON(path string, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(encoded, '\n'), 0o644)
}
