package gamification

import (
	"context"
	"slices"
	"strings"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/storage"
)

// Session statuses.
const (
	SessionWaiting = "waiting"
)

// StartCollaborativeSession records a new session hosted by the current
// user, optionally for a recipe, and counts it on the profile stats.
// Only the local record is written; nobody is invited.
func (m *Manager) StartCollaborativeSession(ctx context.Context, recipeID string) (domain.CollabSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := domain.CollabSession{
		ID:           "session_" + m.ids.NewID(),
		Participants: []string{m.profile.Name},
		RecipeID:     strings.TrimSpace(recipeID),
		Status:       SessionWaiting,
		Chat:         []domain.ChatMessage{},
		StartTime:    m.clock.Now(),
	}
	se, err := storage.NewEntry(domain.KeySessionPrefix+s.ID, sessionVersion, s)
	if err != nil {
		return domain.CollabSession{}, err
	}

	next := m.profile.Clone()
	next.Stats.CollaborativeSessions++
	if _, err := m.commitProfile(ctx, next, se); err != nil {
		return domain.CollabSession{}, err
	}
	m.log.Info("collaborative session %s started", s.ID)
	return s, nil
}

// Sessions returns every recorded collaborative session, oldest first.
// Unreadable records are skipped.
func (m *Manager) Sessions(ctx context.Context) ([]domain.CollabSession, error) {
	keys, err := m.store.Keys(ctx, domain.KeySessionPrefix)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CollabSession, 0, len(keys))
	for _, k := range keys {
		s, ok, err := storage.Get[domain.CollabSession](ctx, m.store, m.log, k, sessionVersion, nil)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.CollabSession) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return out, nil
}

// DownloadRecipe saves r for offline use. Downloading a recipe again
// refreshes its copy and download time.
func (m *Manager) DownloadRecipe(ctx context.Context, r domain.Recipe) (domain.OfflineRecipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := domain.OfflineRecipe{Recipe: r, DownloadedAt: m.clock.Now(), Offline: true}

	next := append([]domain.OfflineRecipe{}, m.offline...)
	if i := slices.IndexFunc(next, func(o domain.OfflineRecipe) bool { return o.Recipe.ID == r.ID }); i >= 0 {
		next[i] = entry
	} else {
		next = append(next, entry)
	}

	if err := storage.Put(ctx, m.store, domain.KeyOfflineRecipes, offlineVersion, next); err != nil {
		m.log.Error("saving offline recipes: %v", err)
		return domain.OfflineRecipe{}, err
	}
	m.offline = next
	m.log.Info("downloaded %q for offline use", r.Title)
	return entry, nil
}

// OfflineRecipes returns the recipes saved for offline use.
func (m *Manager) OfflineRecipes() []domain.OfflineRecipe {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.OfflineRecipe{}, m.offline...)
}
