package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
	"github.com/hammamikhairi/tasteverse/internal/storage"
	"github.com/hammamikhairi/tasteverse/internal/storage/storagetest"
)

func newTracker(t *testing.T, store domain.Store) *Tracker {
	t.Helper()
	tr, err := Open(context.Background(), store, logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return tr
}

func TestConfidenceLabel(t *testing.T) {
	tests := []struct {
		completed int
		want      string
		percent   int
	}{
		{0, "Just starting out", 0},
		{1, "Getting comfortable", 20},
		{2, "Getting comfortable", 40},
		{3, "Building confidence", 60},
		{4, "Building confidence", 80},
		{5, "Feeling confident!", 100},
		{6, "Feeling confident!", 100},
	}

	for _, tt := range tests {
		if got := ConfidenceLabel(tt.completed); got != tt.want {
			t.Errorf("ConfidenceLabel(%d) = %q, want %q", tt.completed, got, tt.want)
		}
		if got := ConfidencePercentage(tt.completed); got != tt.percent {
			t.Errorf("ConfidencePercentage(%d) = %d, want %d", tt.completed, got, tt.percent)
		}
	}
}

func TestOpenDefaults(t *testing.T) {
	tr := newTracker(t, storage.NewMemoryStore(logger.New(logger.LevelOff, nil)))

	if got := tr.State(); got != domain.DefaultProgress() {
		t.Fatalf("expected default state, got %+v", got)
	}
}

func TestRecordRecipeCompletedStages(t *testing.T) {
	tr := newTracker(t, storage.NewMemoryStore(logger.New(logger.LevelOff, nil)))
	ctx := context.Background()

	prevStage := tr.State().CurrentStep
	for n := 1; n <= 7; n++ {
		s, err := tr.RecordRecipeCompleted(ctx)
		if err != nil {
			t.Fatalf("record %d: %v", n, err)
		}
		if s.RecipesCompleted != n {
			t.Fatalf("after %d calls: completed=%d", n, s.RecipesCompleted)
		}

		wantStage := 2
		if n >= 5 {
			wantStage = 3
		}
		if s.CurrentStep != wantStage {
			t.Fatalf("after %d calls: stage=%d, want %d", n, s.CurrentStep, wantStage)
		}
		if s.CurrentStep < prevStage {
			t.Fatalf("stage went back from %d to %d", prevStage, s.CurrentStep)
		}
		if s.ConfidenceLevel != confidenceLevel(n) {
			t.Fatalf("after %d calls: confidence=%d", n, s.ConfidenceLevel)
		}
		prevStage = s.CurrentStep
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	store := storage.NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	tr := newTracker(t, store)
	for i := 0; i < 3; i++ {
		if _, err := tr.RecordRecipeCompleted(ctx); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got := newTracker(t, store).State()
	want := domain.ProgressState{RecipesCompleted: 3, ConfidenceLevel: 3, CurrentStep: 2}
	if got != want {
		t.Fatalf("reopened state %+v, want %+v", got, want)
	}
}

func TestFailedSaveKeepsState(t *testing.T) {
	store := storagetest.NewFaulty(storage.NewMemoryStore(logger.New(logger.LevelOff, nil)))
	tr := newTracker(t, store)
	ctx := context.Background()

	if _, err := tr.RecordRecipeCompleted(ctx); err != nil {
		t.Fatalf("record: %v", err)
	}
	before := tr.State()

	store.FailWrites(true)
	_, err := tr.RecordRecipeCompleted(ctx)
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if !errors.Is(err, storagetest.ErrInjected) {
		t.Fatalf("expected cause to be kept, got %v", err)
	}
	if got := tr.State(); got != before {
		t.Fatalf("state changed on failed save: %+v -> %+v", before, got)
	}
}

func TestOpenDiscardsBadBlobs(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   domain.ProgressState
	}{
		{"malformed", `{"recipesCompleted":`, domain.DefaultProgress()},
		{"negative count", `{"version":1,"data":{"recipesCompleted":-2,"confidenceLevel":1,"currentStep":1}}`, domain.DefaultProgress()},
		{"stage out of range", `{"version":1,"data":{"recipesCompleted":2,"confidenceLevel":2,"currentStep":9}}`, domain.DefaultProgress()},
		{"unknown version", `{"version":7,"data":{"recipesCompleted":2,"confidenceLevel":2,"currentStep":2}}`, domain.DefaultProgress()},
		{"legacy blob", `{"recipesCompleted":6,"confidenceLevel":1,"currentStep":3}`,
			domain.ProgressState{RecipesCompleted: 6, ConfidenceLevel: 4, CurrentStep: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore(logger.New(logger.LevelOff, nil))
			if err := store.Save(context.Background(), domain.KeyProgress, []byte(tt.stored)); err != nil {
				t.Fatalf("seed: %v", err)
			}
			if got := newTracker(t, store).State(); got != tt.want {
				t.Fatalf("state %+v, want %+v", got, tt.want)
			}
		})
	}
}
