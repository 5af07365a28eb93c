// Package catalog loads the exercise catalog from a YAML file and serves
// id lookups. The catalog is read-only once loaded.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/claude/liftlog/internal/models"
	"gopkg.in/yaml.v3"
)

// Catalog is an in-memory exercise catalog.
type Catalog struct {
	byID map[string]models.ExerciseDefinition
}

type catalogFile struct {
	Exercises []models.ExerciseDefinition `yaml:"exercises"`
}

// Load reads and validates a catalog YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw YAML.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	byID := make(map[string]models.ExerciseDefinition, len(f.Exercises))
	for i, def := range f.Exercises {
		if def.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: id is required", i)
		}
		if def.Name == "" {
			return nil, fmt.Errorf("catalog entry %q: name is required", def.ID)
		}
		if _, dup := byID[def.ID]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate id", def.ID)
		}
		byID[def.ID] = def
	}
	return &Catalog{byID: byID}, nil
}

// Lookup resolves an exercise id. The second return is false for unknown ids;
// callers skip such exercises rather than failing whole computations.
func (c *Catalog) Lookup(id string) (models.ExerciseDefinition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// All returns every definition sorted by id.
func (c *Catalog) All() []models.ExerciseDefinition {
	out := make([]models.ExerciseDefinition, 0, len(c.byID))
	for _, def := range c.byID {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.byID) }
