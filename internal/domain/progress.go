package domain

// MaxProgressStage is the number of onboarding stages a beginner moves through.
const MaxProgressStage = 3

// ProgressState is the beginner-mode progress record.
type ProgressState struct {
	RecipesCompleted int `json:"recipesCompleted"`
	// ConfidenceLevel is derived from RecipesCompleted. It is stored for
	// readers of the blob but recomputed on every load.
	ConfidenceLevel int `json:"confidenceLevel"`
	CurrentStep     int `json:"currentStep"`
}

// DefaultProgress is the state of a user who has never cooked anything.
func DefaultProgress() ProgressState {
	return ProgressState{RecipesCompleted: 0, ConfidenceLevel: 1, CurrentStep: 1}
}
