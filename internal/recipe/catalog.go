// Package recipe provides the read-only recipe catalog and its YAML loader.
package recipe

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
	"github.com/hammamikhairi/tasteverse/internal/textmatch"
)

//go:embed data/*.yaml
var seedFS embed.FS

// Built-in catalog names.
const (
	FeaturedName = "featured"
	BeginnerName = "beginner"
)

// Catalog is an immutable, ordered set of recipes. Queries never fail and
// return recipes in catalog order. Safe for concurrent use.
type Catalog struct {
	name    string
	recipes []domain.Recipe
	byID    map[string]int
	log     *logger.Logger
}

// NewCatalog builds a catalog over recipes. The slice is copied.
func NewCatalog(name string, recipes []domain.Recipe, log *logger.Logger) *Catalog {
	c := &Catalog{
		name:    name,
		recipes: append([]domain.Recipe(nil), recipes...),
		byID:    make(map[string]int, len(recipes)),
		log:     log,
	}
	for i, r := range c.recipes {
		c.byID[r.ID] = i
	}
	log.Debug("catalog %s: %d recipes", name, len(c.recipes))
	return c
}

// Featured returns the catalog of featured recipes shown on the home page.
func Featured(log *logger.Logger) *Catalog {
	return mustBuiltin(FeaturedName, log)
}

// Beginner returns the catalog of step-by-step beginner recipes.
func Beginner(log *logger.Logger) *Catalog {
	return mustBuiltin(BeginnerName, log)
}

// Builtin returns the embedded catalog with the given name.
func Builtin(name string, log *logger.Logger) (*Catalog, error) {
	raw, err := seedFS.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", name, domain.ErrNotFound)
	}
	recipes, err := Load(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("loading catalog %q: %w", name, err)
	}
	return NewCatalog(name, recipes, log), nil
}

// The embedded data ships with the binary; failing to load it is a bug.
func mustBuiltin(name string, log *logger.Logger) *Catalog {
	c, err := Builtin(name, log)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the catalog name.
func (c *Catalog) Name() string {
	return c.name
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// List returns every recipe.
func (c *Catalog) List() []domain.Recipe {
	return append([]domain.Recipe(nil), c.recipes...)
}

// Get returns a recipe by ID.
func (c *Catalog) Get(id string) (domain.Recipe, error) {
	i, ok := c.byID[id]
	if !ok {
		c.log.Debug("recipe not found: %s", id)
		return domain.Recipe{}, domain.ErrNotFound
	}
	return c.recipes[i], nil
}

// ByCategory returns the recipes whose category equals category exactly.
func (c *Catalog) ByCategory(category domain.Category) []domain.Recipe {
	out := []domain.Recipe{}
	for _, r := range c.recipes {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Search returns recipes whose title, description, tags or author name
// contain query, ignoring case. The query is not trimmed, so surrounding
// spaces must match too. An empty query matches everything.
func (c *Catalog) Search(query string) []domain.Recipe {
	q := textmatch.Fold(query)
	c.log.Debug("searching %s for %q", c.name, q)

	out := []domain.Recipe{}
	for _, r := range c.recipes {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r domain.Recipe, q string) bool {
	if q == "" {
		return true
	}
	if textmatch.ContainsFolded(r.Title, q) || textmatch.ContainsFolded(r.Description, q) {
		return true
	}
	for _, tag := range r.Tags {
		if textmatch.ContainsFolded(tag, q) {
			return true
		}
	}
	return textmatch.ContainsFolded(r.Author.Name, q)
}

// MatchIngredients returns recipes where any selected ingredient occurs in
// any recipe ingredient name, ignoring case. Blank selections are dropped;
// with nothing left to match, no recipes are returned.
func (c *Catalog) MatchIngredients(selected []string) []domain.Recipe {
	needles := make([]string, 0, len(selected))
	for _, s := range selected {
		if s = strings.TrimSpace(s); s != "" {
			needles = append(needles, textmatch.Fold(s))
		}
	}

	out := []domain.Recipe{}
	if len(needles) == 0 {
		return out
	}
	for _, r := range c.recipes {
		if usesAny(r, needles) {
			out = append(out, r)
		}
	}
	return out
}

func usesAny(r domain.Recipe, needles []string) bool {
	for _, ing := range r.Ingredients {
		name := textmatch.Fold(ing.Name)
		for _, n := range needles {
			if strings.Contains(name, n) {
				return true
			}
		}
	}
	return false
}
