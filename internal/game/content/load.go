package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/content/schema"
)

// Table file names inside the content directory.
const (
	ItemsFile   = "items.json"
	EffectsFile = "effects.json"
	RecipesFile = "recipes.json"
	PathwaysDir = "pathways"
)

// Load reads the reference data set from a content directory.
//
// Loading never fails hard: a missing, unreadable, or schema-invalid table
// degrades to an empty table so the service stays up with reduced
// functionality. Every degraded table is reported in problems for the
// caller to log.
func Load(dir string) (*Content, []error) {
	var problems []error

	var items map[string]Item
	if err := loadTable(filepath.Join(dir, ItemsFile), "items.schema.json", &items); err != nil {
		items = nil
		problems = append(problems, err)
	}

	var effects map[string]Effect
	if err := loadTable(filepath.Join(dir, EffectsFile), "effects.schema.json", &effects); err != nil {
		effects = nil
		problems = append(problems, err)
	}

	var recipes map[string]map[string]Recipe
	if err := loadTable(filepath.Join(dir, RecipesFile), "recipes.schema.json", &recipes); err != nil {
		recipes = nil
		problems = append(problems, err)
	}

	pathways, pathwayProblems := loadPathways(filepath.Join(dir, PathwaysDir))
	problems = append(problems, pathwayProblems...)

	return New(items, effects, recipes, pathways), problems
}

// loadTable reads, schema-validates, and decodes one keyed table. A missing
// file is not an error: the table is simply empty.
func loadTable(path, schemaName string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := validate(schemaName, data); err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// loadPathways reads every pathway shard in the directory, keyed by the
// pathway's own embedded name. Invalid shards are skipped individually.
func loadPathways(dir string) (map[string]Pathway, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("read pathways dir: %w", err)}
	}

	var problems []error
	pathways := make(map[string]Pathway)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			problems = append(problems, fmt.Errorf("read %s: %w", path, err))
			continue
		}
		if err := validate("pathway.schema.json", data); err != nil {
			problems = append(problems, fmt.Errorf("validate %s: %w", path, err))
			continue
		}

		var pathway Pathway
		if err := json.Unmarshal(data, &pathway); err != nil {
			problems = append(problems, fmt.Errorf("decode %s: %w", path, err))
			continue
		}
		pathways[pathway.Name] = pathway
	}
	return pathways, problems
}

// validate checks raw table bytes against an embedded schema.
func validate(schemaName string, data []byte) error {
	schemaData, err := schema.FS.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("read embedded schema %s: %w", schemaName, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, bytes.NewReader(schemaData)); err != nil {
		return fmt.Errorf("register schema %s: %w", schemaName, err)
	}
	compiled, err := compiler.Compile(schemaName)
	if err != nil {
		return fmt.Errorf("compile schema %s: %w", schemaName, err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	return compiled.Validate(decoded)
}
