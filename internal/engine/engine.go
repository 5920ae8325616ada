// Package engine is the application facade. Each user action is routed to
// the one component that owns it and the outcome is reported through a
// Notifier.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/gamification"
	"github.com/hammamikhairi/tasteverse/internal/logger"
	"github.com/hammamikhairi/tasteverse/internal/progress"
	"github.com/hammamikhairi/tasteverse/internal/recipe"
	"github.com/hammamikhairi/tasteverse/internal/timer"
)

// Option configures the engine.
type Option func(*Engine)

// WithNotifier sets where user-facing messages go. Without one they are
// only logged.
func WithNotifier(n domain.Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithTimerOptions configures the step timers StepTimer runs.
func WithTimerOptions(opts ...timer.Option) Option {
	return func(e *Engine) {
		e.timerOpts = append(e.timerOpts, opts...)
	}
}

// Engine ties the catalog, the progress tracker and the profile manager
// together. It depends only on the components and is fully testable
// with an in-memory store.
type Engine struct {
	catalog  *recipe.Catalog
	progress *progress.Tracker
	profile  *gamification.Manager
	notifier domain.Notifier
	log      *logger.Logger

	timerOpts []timer.Option
}

// New creates an engine over the given components.
func New(catalog *recipe.Catalog, tracker *progress.Tracker, profile *gamification.Manager, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog:  catalog,
		progress: tracker,
		profile:  profile,
		log:      log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CookResult is what finishing a recipe changed.
type CookResult struct {
	Recipe   domain.Recipe
	Progress domain.ProgressState
	Profile  domain.UserProfile
	Unlocked []domain.Achievement
}

// CatalogName returns the name of the catalog being browsed.
func (e *Engine) CatalogName() string {
	return e.catalog.Name()
}

// Recipes returns every recipe in the catalog.
func (e *Engine) Recipes() []domain.Recipe {
	return e.catalog.List()
}

// Recipe returns a recipe by ID.
func (e *Engine) Recipe(id string) (domain.Recipe, error) {
	r, err := e.catalog.Get(id)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("recipe %q: %w", id, err)
	}
	return r, nil
}

// ByCategory returns the recipes of a category.
func (e *Engine) ByCategory(ctx context.Context, category domain.Category) []domain.Recipe {
	out := e.catalog.ByCategory(category)
	e.notify(ctx, fmt.Sprintf("Showing %s recipes perfect for beginners!", category))
	return out
}

// Search returns recipes matching query.
func (e *Engine) Search(query string) []domain.Recipe {
	return e.catalog.Search(query)
}

// MatchIngredients returns recipes using any of the selected ingredients.
func (e *Engine) MatchIngredients(ctx context.Context, selected []string) []domain.Recipe {
	out := e.catalog.MatchIngredients(selected)

	switch {
	case !anyNonBlank(selected):
		e.notify(ctx, "Please select some ingredients first!")
	case len(out) == 0:
		e.notify(ctx, "No recipes found with those ingredients. Try selecting different ones!")
	default:
		e.notify(ctx, fmt.Sprintf("Found %s with your ingredients!", plural(len(out), "recipe")))
	}
	return out
}

func anyNonBlank(s []string) bool {
	for _, v := range s {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// CompleteRecipe records that the user finished cooking recipe id. The
// progress record and the profile are separate entities: when the
// profile save fails after progress was saved, the progress stays
// recorded and the error is returned.
func (e *Engine) CompleteRecipe(ctx context.Context, id string) (CookResult, error) {
	r, err := e.Recipe(id)
	if err != nil {
		return CookResult{}, err
	}

	state, err := e.progress.RecordRecipeCompleted(ctx)
	if err != nil {
		return CookResult{}, fmt.Errorf("recording progress: %w", err)
	}
	profile, unlocked, err := e.profile.RecordRecipeCooked(ctx)
	if err != nil {
		return CookResult{}, fmt.Errorf("recording cooked recipe: %w", err)
	}

	e.log.Info("completed %s (%d total)", r.ID, state.RecipesCompleted)
	e.notify(ctx, fmt.Sprintf("Great job! You've completed %s!", plural(state.RecipesCompleted, "recipe")))
	e.announce(ctx, unlocked)

	return CookResult{Recipe: r, Progress: state, Profile: profile, Unlocked: unlocked}, nil
}

// Progress returns the beginner progress.
func (e *Engine) Progress() domain.ProgressState {
	return e.progress.State()
}

// Profile returns the user profile.
func (e *Engine) Profile() domain.UserProfile {
	return e.profile.Profile()
}

// Achievements returns the unlocked achievements, oldest first.
func (e *Engine) Achievements() []domain.UnlockedAchievement {
	return e.profile.Achievements()
}

// Pantry returns the pantry contents.
func (e *Engine) Pantry() []domain.PantryItem {
	return e.profile.Pantry()
}

// AddToPantry adds an item to the pantry.
func (e *Engine) AddToPantry(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error) {
	return e.profile.AddToPantry(ctx, item)
}

// Scan scans a barcode into the pantry.
func (e *Engine) Scan(ctx context.Context) (domain.ScanResult, error) {
	res, err := e.profile.ScanBarcode(ctx)
	if err != nil {
		e.notifyUrgent(ctx, "Barcode scanning failed. Please try again.")
		return domain.ScanResult{}, err
	}
	e.notify(ctx, "Ingredient scanned and added to pantry!")
	e.announce(ctx, res.Unlocked)
	return res, nil
}

// SetAllergies replaces the allergy list, keeping the other preferences.
func (e *Engine) SetAllergies(ctx context.Context, allergies []string) (domain.UserProfile, error) {
	prefs := e.profile.Profile().Preferences
	prefs.Allergies = allergies
	return e.profile.SetPreferences(ctx, prefs)
}

// CheckAllergies returns the allergy warnings for recipe id.
func (e *Engine) CheckAllergies(ctx context.Context, id string) ([]domain.AllergyWarning, error) {
	r, err := e.Recipe(id)
	if err != nil {
		return nil, err
	}
	warnings := e.profile.CheckAllergies(r)
	for _, w := range warnings {
		e.notifyUrgent(ctx, fmt.Sprintf("Allergy warning: %s contains %s", w.Ingredient, w.Allergy))
	}
	return warnings, nil
}

// StartSession starts a collaborative session, optionally for a recipe.
func (e *Engine) StartSession(ctx context.Context, recipeID string) (domain.CollabSession, error) {
	if recipeID != "" {
		if _, err := e.Recipe(recipeID); err != nil {
			return domain.CollabSession{}, err
		}
	}
	s, err := e.profile.StartCollaborativeSession(ctx, recipeID)
	if err != nil {
		return domain.CollabSession{}, err
	}
	e.notify(ctx, "Collaborative cooking session started!")
	return s, nil
}

// Sessions lists collaborative sessions.
func (e *Engine) Sessions(ctx context.Context) ([]domain.CollabSession, error) {
	return e.profile.Sessions(ctx)
}

// Download saves recipe id for offline use.
func (e *Engine) Download(ctx context.Context, id string) (domain.OfflineRecipe, error) {
	r, err := e.Recipe(id)
	if err != nil {
		return domain.OfflineRecipe{}, err
	}
	o, err := e.profile.DownloadRecipe(ctx, r)
	if err != nil {
		return domain.OfflineRecipe{}, err
	}
	e.notify(ctx, "Recipe downloaded for offline use!")
	return o, nil
}

// OfflineRecipes lists recipes saved for offline use.
func (e *Engine) OfflineRecipes() []domain.OfflineRecipe {
	return e.profile.OfflineRecipes()
}

// OrderMissing orders whatever recipe id needs that the pantry lacks.
// With nothing missing no order is placed and ok is false.
func (e *Engine) OrderMissing(ctx context.Context, id string) (receipt domain.OrderReceipt, ok bool, err error) {
	r, err := e.Recipe(id)
	if err != nil {
		return domain.OrderReceipt{}, false, err
	}
	missing := e.profile.MissingIngredients(r)
	if len(missing) == 0 {
		e.notify(ctx, "Your pantry already has everything for this recipe.")
		return domain.OrderReceipt{}, false, nil
	}

	receipt, err = e.profile.OrderIngredients(ctx, missing)
	if err != nil {
		e.notifyUrgent(ctx, "Ordering ingredients failed. Please try again.")
		return domain.OrderReceipt{}, false, err
	}
	e.notify(ctx, "Order placed successfully!")
	return receipt, true, nil
}

// StepTimer runs the timer of step (1-based) of recipe id and blocks
// until it fires or ctx is cancelled.
func (e *Engine) StepTimer(ctx context.Context, id string, step int) error {
	r, err := e.Recipe(id)
	if err != nil {
		return err
	}
	var s *domain.Step
	for i := range r.Steps {
		if r.Steps[i].Order == step {
			s = &r.Steps[i]
			break
		}
	}
	if s == nil {
		return fmt.Errorf("%s step %d: %w", r.ID, step, domain.ErrNotFound)
	}

	label := fmt.Sprintf("%s, step %d", r.Title, s.Order)
	if s.Timer() > 0 {
		e.notify(ctx, fmt.Sprintf("Timer started: %s (%s)", label, s.Timer()))
	}
	return timer.New(relay{e}, e.log, e.timerOpts...).Run(ctx, label, s.Timer())
}

// relay routes timer notifications through the engine's notifier.
type relay struct{ e *Engine }

func (r relay) Notify(ctx context.Context, msg string) error {
	r.e.notify(ctx, msg)
	return nil
}

func (r relay) NotifyUrgent(ctx context.Context, msg string) error {
	r.e.notifyUrgent(ctx, msg)
	return nil
}

func (e *Engine) announce(ctx context.Context, unlocked []domain.Achievement) {
	for _, a := range unlocked {
		e.notify(ctx, fmt.Sprintf("Achievement Unlocked: %s!", a.Name))
	}
}

func (e *Engine) notify(ctx context.Context, msg string) {
	if e.notifier == nil {
		e.log.Debug("notify: %s", msg)
		return
	}
	if err := e.notifier.Notify(ctx, msg); err != nil {
		e.log.Warn("notify failed: %v", err)
	}
}

func (e *Engine) notifyUrgent(ctx context.Context, msg string) {
	if e.notifier == nil {
		e.log.Debug("notify-urgent: %s", msg)
		return
	}
	if err := e.notifier.NotifyUrgent(ctx, msg); err != nil {
		e.log.Warn("notify failed: %v", err)
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
