package recipe

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
)

func ids(recipes []domain.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestBuiltinCatalogs(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	for _, name := range []string{FeaturedName, BeginnerName} {
		t.Run(name, func(t *testing.T) {
			c, err := Builtin(name, log)
			if err != nil {
				t.Fatalf("builtin: %v", err)
			}
			if c.Len() != 6 {
				t.Fatalf("expected 6 recipes, got %d", c.Len())
			}
			if c.Name() != name {
				t.Fatalf("expected name %s, got %s", name, c.Name())
			}
		})
	}

	if _, err := Builtin("missing", log); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogGet(t *testing.T) {
	c := Beginner(logger.New(logger.LevelOff, nil))

	tests := []struct {
		id      string
		wantErr error
	}{
		{"perfect-scrambled-eggs", nil},
		{"simple-salad", nil},
		{"nonexistent", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := c.Get(tt.id)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.ID != tt.id {
				t.Fatalf("expected ID %s, got %s", tt.id, r.ID)
			}
			if len(r.Steps) == 0 {
				t.Fatal("recipe has no steps")
			}
			if len(r.Ingredients) == 0 {
				t.Fatal("recipe has no ingredients")
			}
		})
	}
}

func TestCatalogByCategory(t *testing.T) {
	c := Beginner(logger.New(logger.LevelOff, nil))

	tests := []struct {
		category domain.Category
		want     []string
	}{
		{domain.CategoryBreakfast, []string{"perfect-scrambled-eggs"}},
		{domain.CategoryLunch, []string{"simple-pasta-tomato-sauce", "grilled-cheese-sandwich", "simple-salad"}},
		{domain.CategoryDinner, []string{"basic-chicken-breast"}},
		{domain.CategorySnacks, []string{"chocolate-chip-cookies"}},
		{"Lunch", []string{}},
		{"brunch", []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := c.ByCategory(tt.category)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Fatalf("ByCategory(%q) mismatch (-want +got):\n%s", tt.category, diff)
			}
		})
	}
}

func TestCatalogSearch(t *testing.T) {
	c := Featured(logger.New(logger.LevelOff, nil))

	tests := []struct {
		query string
		want  []string
	}{
		{"pasta", []string{"classic-spaghetti-carbonara", "pasta-aglio-e-olio"}},
		{"PASTA", []string{"classic-spaghetti-carbonara", "pasta-aglio-e-olio"}},
		{"pasta dish", []string{"classic-spaghetti-carbonara"}},
		{"  pasta  ", []string{}},
		{"yuki", []string{"chicken-teriyaki-bowl"}},
		{"vegan", []string{"quinoa-buddha-bowl"}},
		{"nonexistent-query-xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Search(tt.query)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Fatalf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}

	if got := c.Search(""); len(got) != c.Len() {
		t.Fatalf("empty query: expected %d recipes, got %d", c.Len(), len(got))
	}
}

func TestCatalogMatchIngredients(t *testing.T) {
	c := Beginner(logger.New(logger.LevelOff, nil))

	tests := []struct {
		name     string
		selected []string
		want     []string
	}{
		{"substring", []string{"egg"}, []string{"perfect-scrambled-eggs", "chocolate-chip-cookies"}},
		{"case insensitive", []string{"BREAD"}, []string{"grilled-cheese-sandwich"}},
		{"any selected", []string{"lettuce", "chicken"}, []string{"basic-chicken-breast", "simple-salad"}},
		{"blanks ignored", []string{"", "  ", "cucumber"}, []string{"simple-salad"}},
		{"nothing selected", nil, []string{}},
		{"only blanks", []string{" "}, []string{}},
		{"no match", []string{"saffron"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.MatchIngredients(tt.selected)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Fatalf("MatchIngredients(%q) mismatch (-want +got):\n%s", tt.selected, diff)
			}
		})
	}
}

func TestCatalogMatchFoldsUnicode(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	c := NewCatalog("test", []domain.Recipe{
		{ID: "poppers", Title: "Poppers", Difficulty: domain.DifficultyEasy,
			Ingredients: []domain.Ingredient{{Name: "Jalape\u00f1o"}}},
	}, log)

	got := c.MatchIngredients([]string{"jalapen\u0303o"})
	if len(got) != 1 {
		t.Fatalf("expected decomposed spelling to match, got %d recipes", len(got))
	}
}

func TestCatalogListIsACopy(t *testing.T) {
	c := Featured(logger.New(logger.LevelOff, nil))

	list := c.List()
	list[0].Title = "changed"

	r, err := c.Get(list[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.Title == "changed" {
		t.Fatal("mutating List result changed the catalog")
	}
}
