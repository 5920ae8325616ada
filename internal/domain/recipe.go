// Package domain defines the core types and interfaces for the recipe
// browser. All other packages depend on domain; domain depends on nothing.
package domain

import "time"

// Recipe is a read-only catalog entry. Recipes are never mutated after
// they are loaded.
type Recipe struct {
	ID            string
	Title         string
	Description   string
	Category      Category
	Difficulty    Difficulty
	Ingredients   []Ingredient
	Steps         []Step
	Tips          []string
	Timing        Timing
	Tags          []string
	Author        Author
	Image         string
	Servings      int
	ServingSize   string
	Rating        float64
	ReviewCount   int
	Equipment     []string
	NutritionInfo string
}

// Category groups recipes. The meal constants are what the beginner
// catalog uses; anything else is a free-form cuisine tag ("italian").
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategorySnacks    Category = "snacks"
)

// Difficulty is how hard a recipe is to cook.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Ingredient is a single recipe ingredient. Amount and Preparation are
// free text and may be empty.
type Ingredient struct {
	Name        string
	Amount      string // "2-3 large", "1 tablespoon"
	Preparation string // "room temperature", "minced"
}

// Step is a single cooking step.
type Step struct {
	Order       int
	Instruction string
	Time        string // human-readable, e.g. "2-3 minutes"
	Seconds     int    // timer length; kept consistent with Time by the data author
	Temperature string
	Technique   string
	VisualCue   string
}

// Timer returns the step timer as a duration, or 0 if the step is untimed.
func (s Step) Timer() time.Duration {
	return time.Duration(s.Seconds) * time.Second
}

// Timing holds the optional free-text durations of a recipe.
type Timing struct {
	Total    string
	Prep     string
	Cook     string
	Rest     string
	Cooling  string
	Assembly string
}

// Author credits whoever wrote a recipe.
type Author struct {
	Name   string
	Avatar string
}
