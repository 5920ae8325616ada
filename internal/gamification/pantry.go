package gamification

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/textmatch"
)

func checkItem(item domain.PantryItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("pantry item without a name: %w", domain.ErrInvalidInput)
	}
	if math.IsNaN(item.Quantity) || math.IsInf(item.Quantity, 0) {
		return fmt.Errorf("pantry item %q: quantity is not a finite number: %w", item.Name, domain.ErrInvalidInput)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("pantry item %q: negative quantity: %w", item.Name, domain.ErrInvalidInput)
	}
	return nil
}

// mergePantry returns a new pantry with item added and the entry as
// stored. pantry itself is not modified.
func mergePantry(pantry []domain.PantryItem, item domain.PantryItem, now time.Time) ([]domain.PantryItem, domain.PantryItem) {
	qty := item.Quantity
	if qty == 0 {
		qty = 1
	}

	out := append(make([]domain.PantryItem, 0, len(pantry)+1), pantry...)
	for i := range out {
		if out[i].ID == item.ID {
			out[i].Quantity += qty
			out[i].LastUpdated = now
			return out, out[i]
		}
	}

	item.Quantity = qty
	item.AddedDate = now
	item.LastUpdated = now
	return append(out, item), item
}

func allergyWarnings(r domain.Recipe, allergies []string) []domain.AllergyWarning {
	type allergy struct{ name, folded string }
	active := make([]allergy, 0, len(allergies))
	for _, a := range allergies {
		if a = strings.TrimSpace(a); a != "" {
			active = append(active, allergy{a, textmatch.Fold(a)})
		}
	}

	out := []domain.AllergyWarning{}
	for _, ing := range r.Ingredients {
		name := textmatch.Fold(ing.Name)
		for _, a := range active {
			if strings.Contains(name, a.folded) {
				out = append(out, domain.AllergyWarning{Ingredient: ing.Name, Allergy: a.name})
				break
			}
		}
	}
	return out
}

// MissingIngredients lists the recipe ingredients the pantry does not
// cover. An ingredient is covered when its name and a pantry item name
// contain one another, ignoring case.
func (m *Manager) MissingIngredients(r domain.Recipe) []string {
	m.mu.Lock()
	have := make([]string, 0, len(m.pantry))
	for _, it := range m.pantry {
		have = append(have, textmatch.Fold(it.Name))
	}
	m.mu.Unlock()

	out := []string{}
	for _, ing := range r.Ingredients {
		if !covered(textmatch.Fold(ing.Name), have) {
			out = append(out, ing.Name)
		}
	}
	return out
}

func covered(name string, have []string) bool {
	for _, h := range have {
		if strings.Contains(name, h) || strings.Contains(h, name) {
			return true
		}
	}
	return false
}

// normalizeSet trims s, drops blanks and removes case-insensitive
// duplicates, keeping the first spelling.
func normalizeSet(s []string) []string {
	out := []string{}
	seen := make(map[string]bool, len(s))
	for _, v := range s {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		k := textmatch.Fold(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}
