// Package progress tracks a beginner's onboarding stage.
package progress

import (
	"context"
	"fmt"
	"sync"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
	"github.com/hammamikhairi/tasteverse/internal/storage"
)

// schemaVersion of the persisted progress blob.
const schemaVersion = 1

// Stage thresholds in completed recipes.
const (
	practicingAt = 1
	confidentAt  = 5
)

// Tracker owns the beginner progress record. Every mutation is saved
// before it becomes visible. Safe for concurrent use.
type Tracker struct {
	mu    sync.Mutex
	store domain.Store
	log   *logger.Logger
	state domain.ProgressState
}

// Open loads the tracker state from store, falling back to the default
// state when nothing usable is stored.
func Open(ctx context.Context, store domain.Store, log *logger.Logger) (*Tracker, error) {
	state, ok, err := storage.Get(ctx, store, log, domain.KeyProgress, schemaVersion, validate)
	if err != nil {
		return nil, err
	}
	if !ok {
		state = domain.DefaultProgress()
	}
	state.ConfidenceLevel = confidenceLevel(state.RecipesCompleted)

	log.Debug("progress loaded: completed=%d stage=%d", state.RecipesCompleted, state.CurrentStep)
	return &Tracker{store: store, log: log, state: state}, nil
}

func validate(s *domain.ProgressState) error {
	if s.RecipesCompleted < 0 {
		return fmt.Errorf("negative recipes completed: %d", s.RecipesCompleted)
	}
	if s.CurrentStep < 1 || s.CurrentStep > domain.MaxProgressStage {
		return fmt.Errorf("stage %d out of range", s.CurrentStep)
	}
	return nil
}

// State returns the current progress.
func (t *Tracker) State() domain.ProgressState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// RecordRecipeCompleted counts one more finished recipe and advances the
// stage when a threshold is crossed. Stages never go back. On a failed
// save the previous state is kept and the error wraps domain.ErrPersistence.
func (t *Tracker) RecordRecipeCompleted(ctx context.Context) (domain.ProgressState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := advance(t.state)
	if err := storage.Put(ctx, t.store, domain.KeyProgress, schemaVersion, next); err != nil {
		t.log.Error("saving progress: %v", err)
		return t.state, err
	}

	if next.CurrentStep != t.state.CurrentStep {
		t.log.Info("progress stage %d -> %d", t.state.CurrentStep, next.CurrentStep)
	}
	t.state = next
	return next, nil
}

func advance(s domain.ProgressState) domain.ProgressState {
	s.RecipesCompleted++
	if s.RecipesCompleted >= practicingAt && s.CurrentStep < 2 {
		s.CurrentStep = 2
	}
	if s.RecipesCompleted >= confidentAt && s.CurrentStep < 3 {
		s.CurrentStep = 3
	}
	s.ConfidenceLevel = confidenceLevel(s.RecipesCompleted)
	return s
}

// confidenceLevel is the 1-based tier behind ConfidenceLabel.
func confidenceLevel(completed int) int {
	switch {
	case completed <= 0:
		return 1
	case completed <= 2:
		return 2
	case completed <= 4:
		return 3
	default:
		return 4
	}
}

var labels = [...]string{
	1: "Just starting out",
	2: "Getting comfortable",
	3: "Building confidence",
	4: "Feeling confident!",
}

// ConfidenceLabel describes how confident a cook with the given number of
// completed recipes is.
func ConfidenceLabel(completed int) string {
	return labels[confidenceLevel(completed)]
}

// ConfidencePercentage is completed/5 as a percentage, capped at 100.
func ConfidencePercentage(completed int) int {
	if completed <= 0 {
		return 0
	}
	return min(completed*100/confidentAt, 100)
}
