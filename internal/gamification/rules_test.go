package gamification

import (
	"testing"

	"github.com/hammamikhairi/tasteverse/internal/domain"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		stats   domain.Stats
		held    []string
		wantNew []string
	}{
		{"fresh profile", domain.Stats{}, nil, nil},
		{"first recipe", domain.Stats{RecipesCooked: 1}, nil, []string{"first_recipe"}},
		{"second recipe misses first steps", domain.Stats{RecipesCooked: 2}, nil, nil},
		{"nine scans", domain.Stats{IngredientsScanned: 9}, nil, nil},
		{"ten scans", domain.Stats{IngredientsScanned: 10}, nil, []string{"scanner_master"}},
		{"both in rule order", domain.Stats{RecipesCooked: 1, IngredientsScanned: 12}, nil, []string{"first_recipe", "scanner_master"}},
		{"already held", domain.Stats{RecipesCooked: 1, IngredientsScanned: 10}, []string{"scanner_master"}, []string{"first_recipe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.DefaultProfile()
			p.Stats = tt.stats
			for _, id := range tt.held {
				p.Badges = append(p.Badges, domain.Achievement{ID: id})
			}

			got := Evaluate(DefaultRules(), &p)
			if len(got) != len(tt.wantNew) {
				t.Fatalf("unlocked %d achievements, want %d (%v)", len(got), len(tt.wantNew), got)
			}
			for i, a := range got {
				if a.ID != tt.wantNew[i] {
					t.Fatalf("unlocked[%d] = %s, want %s", i, a.ID, tt.wantNew[i])
				}
			}
			if len(p.Badges) != len(tt.held)+len(tt.wantNew) {
				t.Fatalf("profile holds %d badges", len(p.Badges))
			}
			if p.Points != 0 {
				t.Fatalf("achievement points were credited: %d", p.Points)
			}

			if again := Evaluate(DefaultRules(), &p); len(again) != 0 {
				t.Fatalf("second evaluation unlocked %v", again)
			}
		})
	}
}

func TestEvaluateCustomRule(t *testing.T) {
	sharer := Rule{
		Achievement: domain.Achievement{ID: "sharer", Name: "Sharer"},
		Earned:      func(p *domain.UserProfile) bool { return p.Stats.RecipesShared >= 3 },
	}

	p := domain.DefaultProfile()
	p.Stats.RecipesShared = 3
	got := Evaluate([]Rule{sharer}, &p)
	if len(got) != 1 || got[0].ID != "sharer" {
		t.Fatalf("expected sharer badge, got %v", got)
	}
}
