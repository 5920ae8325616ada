// Package gamification manages the user profile: points and levels,
// achievement badges, the pantry, allergy checks, barcode scans and the
// offline and collaborative extras.
package gamification

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/hammamikhairi/tasteverse/internal/clock"
	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/ident"
	"github.com/hammamikhairi/tasteverse/internal/logger"
	"github.com/hammamikhairi/tasteverse/internal/storage"
)

// Schema versions of the persisted blobs.
const (
	profileVersion      = 1
	pantryVersion       = 1
	achievementsVersion = 1
	offlineVersion      = 1
	sessionVersion      = 1
)

// ScanPoints is what every successful barcode scan is worth.
const ScanPoints = 10

// Option configures the manager.
type Option func(*Manager)

// WithClock sets the time source.
func WithClock(c domain.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithIDs sets the id generator used for sessions and scanned items.
func WithIDs(g domain.IDGenerator) Option {
	return func(m *Manager) { m.ids = g }
}

// WithScanner replaces the mock barcode scanner.
func WithScanner(s domain.Scanner) Option {
	return func(m *Manager) { m.scanner = s }
}

// WithOrderer replaces the mock grocery orderer.
func WithOrderer(o domain.Orderer) Option {
	return func(m *Manager) { m.orderer = o }
}

// WithRules replaces the default achievement rules.
func WithRules(rules ...Rule) Option {
	return func(m *Manager) { m.rules = rules }
}

// Manager owns the profile, pantry, achievements log and offline recipes.
// Every mutation is computed on a copy, saved, and only then swapped in,
// so a failed save leaves the manager unchanged. Safe for concurrent use.
type Manager struct {
	mu      sync.Mutex
	store   domain.Store
	log     *logger.Logger
	clock   domain.Clock
	ids     domain.IDGenerator
	scanner domain.Scanner
	orderer domain.Orderer
	rules   []Rule

	profile      domain.UserProfile
	pantry       []domain.PantryItem
	achievements []domain.UnlockedAchievement
	offline      []domain.OfflineRecipe
}

// Open loads the manager state from store. Missing or unusable blobs
// fall back to their defaults.
func Open(ctx context.Context, store domain.Store, log *logger.Logger, opts ...Option) (*Manager, error) {
	m := &Manager{
		store: store,
		log:   log,
		clock: clock.System{},
		ids:   ident.UUID{},
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.scanner == nil {
		m.scanner = &MockScanner{Clock: m.clock, IDs: m.ids}
	}
	if m.orderer == nil {
		m.orderer = &MockOrderer{Clock: m.clock, IDs: m.ids}
	}

	if err := m.load(ctx); err != nil {
		return nil, err
	}
	log.Debug("profile loaded: level=%d points=%d badges=%d pantry=%d",
		m.profile.Level, m.profile.Points, len(m.profile.Badges), len(m.pantry))
	return m, nil
}

func (m *Manager) load(ctx context.Context) error {
	profile, ok, err := storage.Get(ctx, m.store, m.log, domain.KeyProfile, profileVersion, validateProfile)
	if err != nil {
		return err
	}
	if !ok {
		profile = domain.DefaultProfile()
	}
	profile.Level = domain.LevelForPoints(profile.Points)
	m.profile = profile

	if m.pantry, _, err = storage.Get(ctx, m.store, m.log, domain.KeyPantry, pantryVersion, validatePantry); err != nil {
		return err
	}
	if m.achievements, _, err = storage.Get[[]domain.UnlockedAchievement](ctx, m.store, m.log, domain.KeyAchievements, achievementsVersion, nil); err != nil {
		return err
	}
	if m.offline, _, err = storage.Get[[]domain.OfflineRecipe](ctx, m.store, m.log, domain.KeyOfflineRecipes, offlineVersion, nil); err != nil {
		return err
	}
	return nil
}

func validateProfile(p *domain.UserProfile) error {
	if p.Points < 0 {
		return fmt.Errorf("negative points: %d", p.Points)
	}
	if p.Preferences.SkillLevel == "" {
		p.Preferences.SkillLevel = domain.SkillBeginner
	}
	if !p.Preferences.SkillLevel.Valid() {
		return fmt.Errorf("unknown skill level %q", p.Preferences.SkillLevel)
	}
	seen := make(map[string]bool, len(p.Badges))
	badges := p.Badges[:0]
	for _, b := range p.Badges {
		if b.ID == "" || seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		badges = append(badges, b)
	}
	p.Badges = badges
	if p.Badges == nil {
		p.Badges = []domain.Achievement{}
	}
	return nil
}

func validatePantry(items *[]domain.PantryItem) error {
	for _, it := range *items {
		if it.ID == "" {
			return errors.New("pantry item without id")
		}
		if it.Quantity < 0 {
			return fmt.Errorf("pantry item %s: negative quantity", it.ID)
		}
	}
	return nil
}

// Profile returns a copy of the current profile.
func (m *Manager) Profile() domain.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile.Clone()
}

// Pantry returns a copy of the pantry.
func (m *Manager) Pantry() []domain.PantryItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.PantryItem{}, m.pantry...)
}

// Achievements returns the log of unlocked achievements, oldest first.
func (m *Manager) Achievements() []domain.UnlockedAchievement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.UnlockedAchievement{}, m.achievements...)
}

// AwardPoints credits n points, recomputes the level and evaluates the
// achievement rules. n must be positive.
func (m *Manager) AwardPoints(ctx context.Context, n int) (domain.UserProfile, []domain.Achievement, error) {
	if n <= 0 {
		return domain.UserProfile{}, nil, fmt.Errorf("award %d points: %w", n, domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if n > math.MaxInt-m.profile.Points {
		return m.profile.Clone(), nil, fmt.Errorf("award %d points: total overflows: %w", n, domain.ErrInvalidInput)
	}

	next := m.profile.Clone()
	addPoints(&next, n)
	unlocked, err := m.commitProfile(ctx, next)
	if err != nil {
		return m.profile.Clone(), nil, err
	}
	m.log.Info("awarded %d points (total %d, level %d)", n, next.Points, next.Level)
	return m.profile.Clone(), unlocked, nil
}

// addPoints saturates at math.MaxInt.
func addPoints(p *domain.UserProfile, n int) {
	if n > math.MaxInt-p.Points {
		n = math.MaxInt - p.Points
	}
	p.Points += n
	p.Level = domain.LevelForPoints(p.Points)
}

// EvaluateAchievements unlocks every achievement whose rule now holds.
// Already held badges are never unlocked twice. Nothing is written when
// there is nothing new.
func (m *Manager) EvaluateAchievements(ctx context.Context) ([]domain.Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.profile.Clone()
	if trial := next.Clone(); len(Evaluate(m.rules, &trial)) == 0 {
		return nil, nil
	}
	return m.commitProfile(ctx, next)
}

// RecordRecipeCooked counts a cooked recipe on the profile stats.
func (m *Manager) RecordRecipeCooked(ctx context.Context) (domain.UserProfile, []domain.Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.profile.Clone()
	next.Stats.RecipesCooked++
	unlocked, err := m.commitProfile(ctx, next)
	if err != nil {
		return m.profile.Clone(), nil, err
	}
	return m.profile.Clone(), unlocked, nil
}

// commitProfile evaluates the rules against next and saves the profile
// together with any new achievements log entries. next is swapped in on
// success. Callers hold m.mu.
func (m *Manager) commitProfile(ctx context.Context, next domain.UserProfile, extra ...domain.Entry) ([]domain.Achievement, error) {
	unlocked := Evaluate(m.rules, &next)
	history := m.historyWith(unlocked)

	entries, err := m.profileEntries(next, history, len(unlocked) > 0)
	if err != nil {
		return nil, err
	}
	if err := storage.PutBatch(ctx, m.store, append(entries, extra...)...); err != nil {
		m.log.Error("saving profile: %v", err)
		return nil, err
	}

	m.profile = next
	m.achievements = history
	for _, a := range unlocked {
		m.log.Info("achievement unlocked: %s", a.Name)
	}
	return unlocked, nil
}

// historyWith returns the achievements log extended with unlocked.
func (m *Manager) historyWith(unlocked []domain.Achievement) []domain.UnlockedAchievement {
	out := append([]domain.UnlockedAchievement{}, m.achievements...)
	now := m.clock.Now()
	for _, a := range unlocked {
		out = append(out, domain.UnlockedAchievement{Achievement: a, UnlockedAt: now})
	}
	return out
}

func (m *Manager) profileEntries(p domain.UserProfile, history []domain.UnlockedAchievement, withHistory bool) ([]domain.Entry, error) {
	pe, err := storage.NewEntry(domain.KeyProfile, profileVersion, p)
	if err != nil {
		return nil, err
	}
	entries := []domain.Entry{pe}
	if withHistory {
		ae, err := storage.NewEntry(domain.KeyAchievements, achievementsVersion, history)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ae)
	}
	return entries, nil
}

// AddToPantry adds item to the pantry. An item whose ID is already there
// has its quantity added to the existing entry; a zero quantity counts as
// one. Items without an ID get a generated one.
func (m *Manager) AddToPantry(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error) {
	if err := checkItem(item); err != nil {
		return domain.PantryItem{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if item.ID == "" {
		item.ID = m.ids.NewID()
	}
	pantry, stored := mergePantry(m.pantry, item, m.clock.Now())
	if err := checkItem(stored); err != nil {
		return domain.PantryItem{}, err
	}
	if err := storage.Put(ctx, m.store, domain.KeyPantry, pantryVersion, pantry); err != nil {
		m.log.Error("saving pantry: %v", err)
		return domain.PantryItem{}, err
	}
	m.pantry = pantry
	m.log.Debug("pantry: %s now %.2f %s", stored.Name, stored.Quantity, stored.Unit)
	return stored, nil
}

// ScanBarcode reads an item with the scanner, adds it to the pantry and
// credits ScanPoints. Pantry, profile and achievements are written in one
// batch: a failed scan or save changes nothing. Scanner failures are
// returned as *domain.ScanError.
func (m *Manager) ScanBarcode(ctx context.Context) (domain.ScanResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, err := m.scanner.Scan(ctx)
	if err != nil {
		m.log.Warn("barcode scan failed: %v", err)
		return domain.ScanResult{}, &domain.ScanError{Err: err}
	}
	if err := checkItem(item); err != nil {
		return domain.ScanResult{}, &domain.ScanError{Err: err}
	}
	if item.ID == "" {
		item.ID = "barcode_" + m.ids.NewID()
	}

	pantry, stored := mergePantry(m.pantry, item, m.clock.Now())
	if err := checkItem(stored); err != nil {
		return domain.ScanResult{}, &domain.ScanError{Err: err}
	}
	pe, err := storage.NewEntry(domain.KeyPantry, pantryVersion, pantry)
	if err != nil {
		return domain.ScanResult{}, err
	}

	next := m.profile.Clone()
	next.Stats.IngredientsScanned++
	addPoints(&next, ScanPoints)

	unlocked, err := m.commitProfile(ctx, next, pe)
	if err != nil {
		return domain.ScanResult{}, err
	}
	m.pantry = pantry
	m.log.Info("scanned %s into pantry", stored.Name)
	return domain.ScanResult{Item: stored, Unlocked: unlocked}, nil
}

// CheckAllergies pairs each recipe ingredient with the first of the
// user's allergies it contains, ignoring case.
func (m *Manager) CheckAllergies(r domain.Recipe) []domain.AllergyWarning {
	m.mu.Lock()
	allergies := append([]string(nil), m.profile.Preferences.Allergies...)
	m.mu.Unlock()

	return allergyWarnings(r, allergies)
}

// SetPreferences replaces the dietary preferences. List fields are
// trimmed and deduplicated ignoring case; blanks are dropped.
func (m *Manager) SetPreferences(ctx context.Context, prefs domain.Preferences) (domain.UserProfile, error) {
	if prefs.SkillLevel == "" {
		prefs.SkillLevel = domain.SkillBeginner
	}
	if !prefs.SkillLevel.Valid() {
		return domain.UserProfile{}, fmt.Errorf("skill level %q: %w", prefs.SkillLevel, domain.ErrInvalidInput)
	}
	prefs.Allergies = normalizeSet(prefs.Allergies)
	prefs.DietaryRestrictions = normalizeSet(prefs.DietaryRestrictions)
	prefs.CulturalPreferences = normalizeSet(prefs.CulturalPreferences)

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.profile.Clone()
	next.Preferences = prefs
	if err := storage.Put(ctx, m.store, domain.KeyProfile, profileVersion, next); err != nil {
		m.log.Error("saving preferences: %v", err)
		return m.profile.Clone(), err
	}
	m.profile = next
	return next.Clone(), nil
}

// OrderIngredients places an order for the named ingredients. Orderer
// failures wrap domain.ErrExternalFailure.
func (m *Manager) OrderIngredients(ctx context.Context, names []string) (domain.OrderReceipt, error) {
	names = normalizeSet(names)
	if len(names) == 0 {
		return domain.OrderReceipt{}, fmt.Errorf("nothing to order: %w", domain.ErrInvalidInput)
	}

	receipt, err := m.orderer.Order(ctx, names)
	if err != nil {
		m.log.Warn("ordering ingredients failed: %v", err)
		return domain.OrderReceipt{}, fmt.Errorf("ordering ingredients: %w: %w", domain.ErrExternalFailure, err)
	}
	m.log.Info("order %s placed for %d ingredients", receipt.OrderID, len(receipt.Items))
	return receipt, nil
}
