package recipe

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/tasteverse/internal/domain"
)

// recipeDoc is the on-disk shape of a recipe.
type recipeDoc struct {
	ID            string          `yaml:"id"`
	Title         string          `yaml:"title"`
	Description   string          `yaml:"description"`
	Image         string          `yaml:"image"`
	Category      string          `yaml:"category"`
	Difficulty    string          `yaml:"difficulty"`
	Timing        timingDoc       `yaml:"timing"`
	Servings      int             `yaml:"servings"`
	ServingSize   string          `yaml:"servingSize"`
	Rating        float64         `yaml:"rating"`
	ReviewCount   int             `yaml:"reviewCount"`
	Author        authorDoc       `yaml:"author"`
	Tags          []string        `yaml:"tags"`
	Ingredients   []ingredientDoc `yaml:"ingredients"`
	Equipment     []string        `yaml:"equipment"`
	Steps         []stepDoc       `yaml:"steps"`
	Tips          []string        `yaml:"tips"`
	NutritionInfo string          `yaml:"nutritionInfo"`
}

type timingDoc struct {
	Total    string `yaml:"total"`
	Prep     string `yaml:"prep"`
	Cook     string `yaml:"cook"`
	Rest     string `yaml:"rest"`
	Cooling  string `yaml:"cooling"`
	Assembly string `yaml:"assembly"`
}

type authorDoc struct {
	Name   string `yaml:"name"`
	Avatar string `yaml:"avatar"`
}

type stepDoc struct {
	Step        int    `yaml:"step"`
	Instruction string `yaml:"instruction"`
	Time        string `yaml:"time"`
	Timer       int    `yaml:"timer"`
	Temperature string `yaml:"temperature"`
	Technique   string `yaml:"technique"`
	VisualCue   string `yaml:"visualCue"`
}

// ingredientDoc accepts either a bare name or a mapping.
type ingredientDoc struct {
	Name        string `yaml:"name"`
	Amount      string `yaml:"amount"`
	Preparation string `yaml:"preparation"`
}

// UnmarshalYAML decodes "eggs" as {name: eggs}.
func (d *ingredientDoc) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*d = ingredientDoc{Name: value.Value}
		return nil
	}
	type plain ingredientDoc
	return value.Decode((*plain)(d))
}

// Load decodes a YAML list of recipes and normalizes it into the
// canonical domain form. It rejects unknown fields, missing ids or
// titles, duplicate ids, unknown difficulties and unnamed ingredients.
func Load(r io.Reader) ([]domain.Recipe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []recipeDoc
	if err := dec.Decode(&docs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding recipes: %w", err)
	}

	seen := make(map[string]bool, len(docs))
	out := make([]domain.Recipe, 0, len(docs))
	for i, doc := range docs {
		r, err := doc.normalize()
		if err != nil {
			return nil, fmt.Errorf("recipe %d (%q): %w", i+1, doc.ID, err)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("recipe %d: duplicate id %q", i+1, r.ID)
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out, nil
}

func (d recipeDoc) normalize() (domain.Recipe, error) {
	id := strings.TrimSpace(d.ID)
	if id == "" {
		return domain.Recipe{}, errors.New("missing id")
	}
	if strings.TrimSpace(d.Title) == "" {
		return domain.Recipe{}, errors.New("missing title")
	}
	diff := domain.Difficulty(d.Difficulty)
	if !diff.Valid() {
		return domain.Recipe{}, fmt.Errorf("unknown difficulty %q", d.Difficulty)
	}

	r := domain.Recipe{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Category:    domain.Category(strings.TrimSpace(d.Category)),
		Difficulty:  diff,
		Tips:        d.Tips,
		Timing: domain.Timing{
			Total:    d.Timing.Total,
			Prep:     d.Timing.Prep,
			Cook:     d.Timing.Cook,
			Rest:     d.Timing.Rest,
			Cooling:  d.Timing.Cooling,
			Assembly: d.Timing.Assembly,
		},
		Tags:          d.Tags,
		Author:        domain.Author{Name: d.Author.Name, Avatar: d.Author.Avatar},
		Image:         d.Image,
		Servings:      d.Servings,
		ServingSize:   d.ServingSize,
		Rating:        d.Rating,
		ReviewCount:   d.ReviewCount,
		Equipment:     d.Equipment,
		NutritionInfo: d.NutritionInfo,
	}

	for _, ing := range d.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			return domain.Recipe{}, errors.New("ingredient without a name")
		}
		r.Ingredients = append(r.Ingredients, domain.Ingredient{
			Name:        name,
			Amount:      ing.Amount,
			Preparation: ing.Preparation,
		})
	}

	for i, s := range d.Steps {
		order := s.Step
		if order == 0 {
			order = i + 1
		}
		if s.Timer < 0 {
			return domain.Recipe{}, fmt.Errorf("step %d: negative timer", order)
		}
		r.Steps = append(r.Steps, domain.Step{
			Order:       order,
			Instruction: s.Instruction,
			Time:        s.Time,
			Seconds:     s.Timer,
			Temperature: s.Temperature,
			Technique:   s.Technique,
			VisualCue:   s.VisualCue,
		})
	}

	return r, nil
}
