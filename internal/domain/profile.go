package domain

import (
	"slices"
	"time"
)

// SkillLevel is the user's self-declared cooking skill.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Valid reports whether s is a known skill level.
func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	default:
		return false
	}
}

// UserProfile is the gamified user record.
type UserProfile struct {
	Name        string        `json:"name"`
	Level       int           `json:"level"`
	Points      int           `json:"points"`
	Badges      []Achievement `json:"badges"`
	Preferences Preferences   `json:"preferences"`
	Stats       Stats         `json:"stats"`
}

// HasBadge reports whether the profile already holds the achievement id.
func (p *UserProfile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the profile.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.Badges = slices.Clone(p.Badges)
	out.Preferences.Allergies = slices.Clone(p.Preferences.Allergies)
	out.Preferences.DietaryRestrictions = slices.Clone(p.Preferences.DietaryRestrictions)
	out.Preferences.CulturalPreferences = slices.Clone(p.Preferences.CulturalPreferences)
	return out
}

// Preferences holds dietary settings. The string slices have set semantics.
type Preferences struct {
	Allergies           []string   `json:"allergies"`
	DietaryRestrictions []string   `json:"dietaryRestrictions"`
	SkillLevel          SkillLevel `json:"skillLevel"`
	CulturalPreferences []string   `json:"culturalPreferences"`
	SustainabilityMode  bool       `json:"sustainabilityMode"`
}

// Stats are the profile counters achievements are evaluated against.
type Stats struct {
	RecipesCooked         int `json:"recipesCooked"`
	RecipesShared         int `json:"recipesShared"`
	IngredientsScanned    int `json:"ingredientsScanned"`
	CollaborativeSessions int `json:"collaborativeSessions"`
}

// DefaultProfile is the profile of a first-time user.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:   "Guest User",
		Level:  1,
		Points: 0,
		Badges: []Achievement{},
		Preferences: Preferences{
			Allergies:           []string{},
			DietaryRestrictions: []string{},
			SkillLevel:          SkillBeginner,
			CulturalPreferences: []string{},
		},
	}
}

// LevelForPoints derives the profile level: one level per 100 points,
// starting at 1.
func LevelForPoints(points int) int {
	return points/100 + 1
}

// Achievement is a one-time unlockable badge.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
}

// UnlockedAchievement is an entry of the achievements log.
type UnlockedAchievement struct {
	Achievement
	UnlockedAt time.Time `json:"unlockedAt"`
}

// PantryItem is a tracked ingredient in the user's pantry.
type PantryItem struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Quantity        float64         `json:"quantity"`
	Unit            string          `json:"unit"`
	ExpiryDate      time.Time       `json:"expiryDate"`
	NutritionalInfo NutritionalInfo `json:"nutritionalInfo"`
	AddedDate       time.Time       `json:"addedDate"`
	LastUpdated     time.Time       `json:"lastUpdated"`
}

// NutritionalInfo is per-100g nutrition of a pantry item.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// AllergyWarning pairs a recipe ingredient with the allergy it triggered.
type AllergyWarning struct {
	Ingredient string
	Allergy    string
}

// ScanResult is what a successful barcode scan produced.
type ScanResult struct {
	Item     PantryItem
	Unlocked []Achievement
}

// OfflineRecipe is a recipe saved for offline use.
type OfflineRecipe struct {
	Recipe       Recipe    `json:"recipe"`
	DownloadedAt time.Time `json:"downloadedAt"`
	Offline      bool      `json:"offline"`
}

// CollabSession is the local record of a collaborative cooking session.
type CollabSession struct {
	ID           string        `json:"id"`
	Participants []string      `json:"participants"`
	RecipeID     string        `json:"recipe,omitempty"`
	Status       string        `json:"status"`
	Chat         []ChatMessage `json:"chat"`
	VideoEnabled bool          `json:"videoEnabled"`
	StartTime    time.Time     `json:"startTime"`
}

// ChatMessage is a message posted in a collaborative session.
type ChatMessage struct {
	Author string    `json:"author"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

// OrderReceipt confirms an ingredient order placed with a purchasing partner.
type OrderReceipt struct {
	OrderID  string
	Items    []string
	PlacedAt time.Time
}
