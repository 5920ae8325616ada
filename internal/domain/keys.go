package domain

// Storage keys. Each key is owned by exactly one component.
const (
	KeyProgress       = "tasteverse_beginner_progress"
	KeyProfile        = "tasteverse_profile"
	KeyPantry         = "tasteverse_pantry"
	KeyAchievements   = "tasteverse_achievements"
	KeyOfflineRecipes = "tasteverse_offline_recipes"
	// KeySessionPrefix is followed by the session id.
	KeySessionPrefix = "tasteverse_session_"
)
