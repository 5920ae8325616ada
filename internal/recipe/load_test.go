package recipe

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/tasteverse/internal/domain"
)

func TestLoadNormalizesShapes(t *testing.T) {
	const doc = `
- id: toast
  title: Toast
  category: breakfast
  difficulty: Easy
  ingredients:
    - bread
    - {name: butter, amount: 1 tablespoon, preparation: softened}
  steps:
    - instruction: Toast the bread
      time: 2 minutes
      timer: 120
    - instruction: Spread the butter
`
	recipes, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(recipes))
	}
	r := recipes[0]

	wantIngredients := []domain.Ingredient{
		{Name: "bread"},
		{Name: "butter", Amount: "1 tablespoon", Preparation: "softened"},
	}
	if diff := cmp.Diff(wantIngredients, r.Ingredients); diff != "" {
		t.Fatalf("ingredients mismatch (-want +got):\n%s", diff)
	}

	wantSteps := []domain.Step{
		{Order: 1, Instruction: "Toast the bread", Time: "2 minutes", Seconds: 120},
		{Order: 2, Instruction: "Spread the butter"},
	}
	if diff := cmp.Diff(wantSteps, r.Steps); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}
	if r.Steps[0].Timer().Minutes() != 2 {
		t.Fatalf("expected 2 minute timer, got %v", r.Steps[0].Timer())
	}
}

func TestLoadRejectsBadRecipes(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"missing id", "- {title: T, difficulty: Easy}", "missing id"},
		{"missing title", "- {id: a, difficulty: Easy}", "missing title"},
		{"bad difficulty", "- {id: a, title: T, difficulty: Impossible}", "unknown difficulty"},
		{"duplicate id", "- {id: a, title: T, difficulty: Easy}\n- {id: a, title: U, difficulty: Hard}", "duplicate id"},
		{"unnamed ingredient", "- {id: a, title: T, difficulty: Easy, ingredients: [{amount: 1 cup}]}", "ingredient without a name"},
		{"negative timer", "- {id: a, title: T, difficulty: Easy, steps: [{instruction: x, timer: -1}]}", "negative timer"},
		{"unknown field", "- {id: a, title: T, difficulty: Easy, calories: 3}", "calories"},
		{"not a list", "id: a", "decoding recipes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	recipes, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recipes) != 0 {
		t.Fatalf("expected no recipes, got %d", len(recipes))
	}
}
