package gamification

import "github.com/hammamikhairi/tasteverse/internal/domain"

// Rule unlocks Achievement once Earned reports true for a profile.
type Rule struct {
	Achievement domain.Achievement
	Earned      func(p *domain.UserProfile) bool
}

// FirstSteps is unlocked by the first cooked recipe.
var FirstSteps = Rule{
	Achievement: domain.Achievement{
		ID:          "first_recipe",
		Name:        "First Steps",
		Description: "Cooked your first recipe!",
		Icon:        "fas fa-baby",
		Points:      50,
	},
	Earned: func(p *domain.UserProfile) bool { return p.Stats.RecipesCooked == 1 },
}

// ScannerMaster is unlocked after ten barcode scans.
var ScannerMaster = Rule{
	Achievement: domain.Achievement{
		ID:          "scanner_master",
		Name:        "Scanner Master",
		Description: "Scanned 10 ingredients",
		Icon:        "fas fa-barcode",
		Points:      100,
	},
	Earned: func(p *domain.UserProfile) bool { return p.Stats.IngredientsScanned >= 10 },
}

// DefaultRules returns the built-in achievement rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{FirstSteps, ScannerMaster}
}

// Evaluate appends to p.Badges every achievement whose rule holds and
// which p does not hold yet, in rule order, and returns the new ones.
// Achievement points are not credited.
func Evaluate(rules []Rule, p *domain.UserProfile) []domain.Achievement {
	var unlocked []domain.Achievement
	for _, r := range rules {
		if p.HasBadge(r.Achievement.ID) || !r.Earned(p) {
			continue
		}
		p.Badges = append(p.Badges, r.Achievement)
		unlocked = append(unlocked, r.Achievement)
	}
	return unlocked
}
