// Package config provides loading and validation of the curation configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lbsa71/cv-generator/internal/schemas"
)

// ConfigSchemaPath is the repository-relative path of the configuration schema.
const ConfigSchemaPath = "schemas/cv_config.schema.json"

// Category is one named bucket of the skill taxonomy. The slice order of
// categories in Config.SkillCategories is the display order and also the
// tie-break order when a skill is listed under more than one category.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Config holds the curation tables consumed by the transform pipeline and the
// renderers. It is data about one person's career, not about the machine the
// generator runs on, so it travels with the export rather than the binary.
type Config struct {
	// SkillsMap maps raw skill aliases to canonical names. An empty string
	// value means the raw skill is noise and is discarded entirely.
	SkillsMap map[string]string `json:"skills_map,omitempty"`

	// SkillCategories is the ordered taxonomy the categorizer classifies
	// against. Never model this as a plain map; iteration order is contract.
	SkillCategories []Category `json:"skill_categories"`

	// LocationMap maps free-text locations to canonical display labels.
	LocationMap map[string]string `json:"location_map,omitempty"`

	// Positions maps company name -> exact job title -> ordered raw skills.
	// This table, not a Skills.csv, is the source of truth for which skills
	// attach to which position.
	Positions map[string]map[string][]string `json:"positions,omitempty"`

	// Phone and ProfileRef are optional contact lines for the left column.
	Phone      string `json:"phone,omitempty"`
	ProfileRef string `json:"profile_ref,omitempty"`

	// LenientSkills switches the categorizer from fail-fast to warn-and-drop
	// for skills matching no category.
	LenientSkills bool `json:"lenient_skills,omitempty"`
}

// LoadConfig loads the curation configuration from a JSON file, validating it
// against the configuration schema when the schema file can be located.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(ConfigSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, data); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the semantic constraints the JSON Schema cannot express.
func (c *Config) Validate() error {
	if len(c.SkillCategories) == 0 {
		return fmt.Errorf("config error: 'skill_categories' must name at least one category")
	}

	seen := make(map[string]bool, len(c.SkillCategories))
	for _, cat := range c.SkillCategories {
		if cat.Name == "" {
			return fmt.Errorf("config error: category with empty name")
		}
		if seen[cat.Name] {
			return fmt.Errorf("config error: duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
	}

	return nil
}

// TrimLocation maps a free-text location to its canonical display label.
// Unmatched locations pass through unchanged.
func (c *Config) TrimLocation(location string) string {
	if trimmed, ok := c.LocationMap[location]; ok {
		return trimmed
	}
	return location
}
