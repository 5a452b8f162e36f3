// Package content loads the page copy, facts, quiz questions and breeds.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"feline-fascination/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is everything the page shows that is not runtime state.
type Catalog struct {
	Page   domain.PageContent    `yaml:"page"`
	Facts  []domain.Fact         `yaml:"facts"`
	Quiz   []domain.QuizQuestion `yaml:"quiz"`
	Breeds []domain.Breed        `yaml:"breeds"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects catalogs the rotator or quiz engine could not run with.
func (c *Catalog) Validate() error {
	if len(c.Facts) == 0 {
		return domain.NewEmptyCatalogError("fact")
	}
	for i, f := range c.Facts {
		if strings.TrimSpace(string(f)) == "" {
			return domain.NewInvalidInputError(fmt.Sprintf("fact %d is blank", i))
		}
	}
	if err := domain.ValidateQuestions(c.Quiz); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Breeds))
	for _, b := range c.Breeds {
		key := strings.ToLower(b.Name)
		if key == "" {
			return domain.NewInvalidInputError("breed name is required")
		}
		if _, dup := seen[key]; dup {
			return domain.NewInvalidInputError(fmt.Sprintf("duplicate breed %q", b.Name))
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Breed looks a breed up by name, ignoring case.
func (c *Catalog) Breed(name string) (domain.Breed, error) {
	for _, b := range c.Breeds {
		if strings.EqualFold(b.Name, strings.TrimSpace(name)) {
			return b, nil
		}
	}
	return domain.Breed{}, domain.NewBreedNotFoundError(name)
}
