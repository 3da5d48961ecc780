// Package persona resolves free-text persona and job descriptions into
// weighted keyword profiles for relevance scoring.
package persona

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Category is one named persona or job category with its match
// synonyms and curated keyword set.
type Category struct {
	Name     string   `yaml:"name"`
	Synonyms []string `yaml:"synonyms"`
	Keywords []string `yaml:"keywords"`
}

// Catalog is the full static category table, loaded once at process
// start and passed by reference into the resolver.
type Catalog struct {
	Personas []Category `yaml:"personas"`
	Jobs     []Category `yaml:"jobs"`
	Fallback struct {
		Persona string `yaml:"persona"`
		Job     string `yaml:"job"`
	} `yaml:"fallback"`
}

// LoadCatalog reads a catalog from path, or the embedded default when
// path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultCatalogYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = b
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// Validate checks that categories are well-formed and the fallbacks
// name existing categories, so resolution can never fail at runtime.
func (c *Catalog) Validate() error {
	if len(c.Personas) == 0 {
		return fmt.Errorf("no persona categories")
	}
	if len(c.Jobs) == 0 {
		return fmt.Errorf("no job categories")
	}
	for _, cat := range append(append([]Category{}, c.Personas...), c.Jobs...) {
		if cat.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords", cat.Name)
		}
	}
	if findCategory(c.Personas, c.Fallback.Persona) == nil {
		return fmt.Errorf("fallback persona %q is not a known category", c.Fallback.Persona)
	}
	if findCategory(c.Jobs, c.Fallback.Job) == nil {
		return fmt.Errorf("fallback job %q is not a known category", c.Fallback.Job)
	}
	return nil
}

func findCategory(cats []Category, name string) *Category {
	for i := range cats {
		if cats[i].Name == name {
			return &cats[i]
		}
	}
	return nil
}

// matchCategory returns the first category whose name or synonym occurs
// in the free text (case-insensitive), or nil. Underscores in category
// names match as spaces, so "literature_review" matches "literature
// review".
func matchCategory(cats []Category, freeText string) *Category {
	text := strings.ToLower(freeText)
	for i := range cats {
		name := strings.ReplaceAll(strings.ToLower(cats[i].Name), "_", " ")
		if strings.Contains(text, name) {
			return &cats[i]
		}
		for _, syn := range cats[i].Synonyms {
			if strings.Contains(text, strings.ToLower(syn)) {
				return &cats[i]
			}
		}
	}
	return nil
}
