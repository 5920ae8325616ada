package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/progress"
)

const barWidth = 20

// RecipeList renders one line per recipe.
func RecipeList(recipes []domain.Recipe) string {
	if len(recipes) == 0 {
		return secondaryStyle.Render("No recipes found.") + "\n"
	}

	var b strings.Builder
	for _, r := range recipes {
		meta := []string{string(r.Difficulty)}
		if r.Timing.Total != "" {
			meta = append(meta, r.Timing.Total)
		}
		if r.Rating > 0 {
			meta = append(meta, fmt.Sprintf("★ %.1f", r.Rating))
		}
		fmt.Fprintf(&b, "%s  %s  %s\n",
			titleStyle.Render(r.Title),
			secondaryStyle.Render("["+r.ID+"]"),
			secondaryStyle.Render(strings.Join(meta, " · ")))
	}
	return b.String()
}

// RecipeCard renders a full recipe: summary, ingredients, equipment,
// steps and tips.
func RecipeCard(r domain.Recipe) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(r.Title) + "\n")
	if r.Description != "" {
		b.WriteString(primaryStyle.Render(r.Description) + "\n")
	}

	var meta []string
	if r.Category != "" {
		meta = append(meta, string(r.Category))
	}
	meta = append(meta, string(r.Difficulty))
	for _, t := range []struct{ label, v string }{
		{"total", r.Timing.Total}, {"prep", r.Timing.Prep}, {"cook", r.Timing.Cook},
		{"rest", r.Timing.Rest}, {"cooling", r.Timing.Cooling}, {"assembly", r.Timing.Assembly},
	} {
		if t.v != "" {
			meta = append(meta, t.label+" "+t.v)
		}
	}
	switch {
	case r.Servings > 0:
		meta = append(meta, "serves "+strconv.Itoa(r.Servings))
	case r.ServingSize != "":
		meta = append(meta, "serves "+r.ServingSize)
	}
	if r.Author.Name != "" {
		meta = append(meta, "by "+r.Author.Name)
	}
	b.WriteString(secondaryStyle.Render(strings.Join(meta, " · ")) + "\n")

	if len(r.Ingredients) > 0 {
		b.WriteString("\n" + stepStyle.Render("Ingredients") + "\n")
		for _, ing := range r.Ingredients {
			b.WriteString("  • " + primaryStyle.Render(ingredientLine(ing)) + "\n")
		}
	}

	if len(r.Equipment) > 0 {
		b.WriteString("\n" + stepStyle.Render("Equipment") + "\n")
		b.WriteString("  " + secondaryStyle.Render(strings.Join(r.Equipment, ", ")) + "\n")
	}

	if len(r.Steps) > 0 {
		b.WriteString("\n" + stepStyle.Render("Steps") + "\n")
		for _, s := range r.Steps {
			b.WriteString(stepStyle.Render(fmt.Sprintf("  %d.", s.Order)) + " " + primaryStyle.Render(s.Instruction) + "\n")
			var hints []string
			if s.Time != "" {
				hints = append(hints, s.Time)
			}
			if s.Temperature != "" {
				hints = append(hints, s.Temperature)
			}
			if len(hints) > 0 {
				b.WriteString("     " + secondaryStyle.Render(strings.Join(hints, " · ")) + "\n")
			}
			if s.Technique != "" {
				b.WriteString("     " + secondaryStyle.Render("Technique: "+s.Technique) + "\n")
			}
			if s.VisualCue != "" {
				b.WriteString("     " + secondaryStyle.Render("Look for: "+s.VisualCue) + "\n")
			}
		}
	}

	if len(r.Tips) > 0 {
		b.WriteString("\n" + stepStyle.Render("Tips") + "\n")
		for _, t := range r.Tips {
			b.WriteString("  • " + secondaryStyle.Render(t) + "\n")
		}
	}
	if r.NutritionInfo != "" {
		b.WriteString("\n" + secondaryStyle.Render("Nutrition: "+r.NutritionInfo) + "\n")
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func ingredientLine(ing domain.Ingredient) string {
	s := ing.Name
	if ing.Amount != "" {
		s = ing.Amount + " " + s
	}
	if ing.Preparation != "" {
		s += ", " + ing.Preparation
	}
	return s
}

// Progress renders the beginner progress with a confidence bar.
func Progress(s domain.ProgressState) string {
	pct := progress.ConfidencePercentage(s.RecipesCompleted)
	filled := pct * barWidth / 100

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		titleStyle.Render(fmt.Sprintf("Stage %d of %d", s.CurrentStep, domain.MaxProgressStage)),
		secondaryStyle.Render(stageName(s.CurrentStep)))
	fmt.Fprintf(&b, "%s%s %d%%  %s\n",
		barFullStyle.Render(strings.Repeat("█", filled)),
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled)),
		pct,
		primaryStyle.Render(progress.ConfidenceLabel(s.RecipesCompleted)))
	fmt.Fprintf(&b, "%s\n", secondaryStyle.Render(fmt.Sprintf("Recipes completed: %d", s.RecipesCompleted)))
	return b.String()
}

func stageName(step int) string {
	switch step {
	case 1:
		return "Getting started"
	case 2:
		return "Practicing basics"
	default:
		return "Building confidence"
	}
}

// Profile renders the profile summary, badges and recent unlocks.
func Profile(p domain.UserProfile, unlocked []domain.UnlockedAchievement) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n",
		titleStyle.Render(p.Name),
		secondaryStyle.Render(fmt.Sprintf("level %d · %d points", p.Level, p.Points)))

	st := p.Stats
	fmt.Fprintf(&b, "%s\n", primaryStyle.Render(fmt.Sprintf(
		"cooked %d · shared %d · scanned %d · sessions %d",
		st.RecipesCooked, st.RecipesShared, st.IngredientsScanned, st.CollaborativeSessions)))

	pr := p.Preferences
	fmt.Fprintf(&b, "%s\n", secondaryStyle.Render("skill: "+string(pr.SkillLevel)))
	if len(pr.Allergies) > 0 {
		fmt.Fprintf(&b, "%s\n", urgentStyle.Render("allergies: "+strings.Join(pr.Allergies, ", ")))
	}
	if len(pr.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "%s\n", secondaryStyle.Render("diet: "+strings.Join(pr.DietaryRestrictions, ", ")))
	}

	if len(p.Badges) > 0 {
		badges := make([]string, 0, len(p.Badges))
		for _, a := range p.Badges {
			badges = append(badges, badgeStyle.Render(a.Name))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, badges...) + "\n")
	}
	for _, u := range unlocked {
		fmt.Fprintf(&b, "%s\n", secondaryStyle.Render(fmt.Sprintf(
			"%s  %s: %s", u.UnlockedAt.Format("2006-01-02"), u.Name, u.Description)))
	}
	return b.String()
}

// Pantry renders the pantry contents.
func Pantry(items []domain.PantryItem) string {
	if len(items) == 0 {
		return secondaryStyle.Render("Your pantry is empty.") + "\n"
	}

	var b strings.Builder
	for _, it := range items {
		line := fmt.Sprintf("%s  %s", primaryStyle.Render(it.Name),
			secondaryStyle.Render(strconv.FormatFloat(it.Quantity, 'f', -1, 64)+" "+it.Unit))
		if it.Category != "" {
			line += "  " + secondaryStyle.Render(it.Category)
		}
		if !it.ExpiryDate.IsZero() {
			line += "  " + secondaryStyle.Render("expires "+it.ExpiryDate.Format("2006-01-02"))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// AllergyWarnings renders allergy warnings, or a reassurance when there
// are none.
func AllergyWarnings(warnings []domain.AllergyWarning) string {
	if len(warnings) == 0 {
		return infoStyle.Render("No allergens found.") + "\n"
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(urgentStyle.Render(fmt.Sprintf("⚠ %s (%s)", w.Ingredient, w.Allergy)) + "\n")
	}
	return b.String()
}

// Sessions renders collaborative sessions.
func Sessions(sessions []domain.CollabSession) string {
	if len(sessions) == 0 {
		return secondaryStyle.Render("No collaborative sessions yet.") + "\n"
	}
	var b strings.Builder
	for _, s := range sessions {
		line := fmt.Sprintf("%s  %s  %s", primaryStyle.Render(s.ID),
			secondaryStyle.Render(s.Status),
			secondaryStyle.Render(strings.Join(s.Participants, ", ")))
		if s.RecipeID != "" {
			line += "  " + secondaryStyle.Render(s.RecipeID)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// OfflineRecipes renders recipes saved for offline use.
func OfflineRecipes(recipes []domain.OfflineRecipe) string {
	if len(recipes) == 0 {
		return secondaryStyle.Render("No recipes downloaded.") + "\n"
	}
	var b strings.Builder
	for _, o := range recipes {
		fmt.Fprintf(&b, "%s  %s\n", primaryStyle.Render(o.Recipe.Title),
			secondaryStyle.Render("downloaded "+o.DownloadedAt.Format("2006-01-02 15:04")))
	}
	return b.String()
}

// Receipt renders an order confirmation.
func Receipt(r domain.OrderReceipt) string {
	return fmt.Sprintf("%s\n%s\n",
		infoStyle.Render("Order "+r.OrderID),
		primaryStyle.Render(strings.Join(r.Items, ", ")))
}
