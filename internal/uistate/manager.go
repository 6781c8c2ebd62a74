package uistate

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/google/uuid"
)

// ErrUnknownSession is returned for a session id that was never issued or
// has been evicted.
var ErrUnknownSession = errors.New("unknown session")

// Manager owns every session. Each session is only changed through Update,
// which serializes mutations and hands back an independent snapshot.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*models.SessionState
	max      int
	now      func() time.Time
}

// NewManager returns a Manager holding at most maxSessions sessions.
func NewManager(maxSessions int, now func() time.Time) *Manager {
	if maxSessions < 1 {
		maxSessions = 1
	}
	return &Manager{
		sessions: make(map[string]*models.SessionState),
		max:      maxSessions,
		now:      now,
	}
}

// Create starts a session with initial and returns it along with the id of
// the session evicted to make room, if any.
func (m *Manager) Create(initial models.Selection) (models.SessionState, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var evicted string
	if len(m.sessions) >= m.max {
		evicted = m.oldestLocked()
		delete(m.sessions, evicted)
	}

	now := m.now()
	s := &models.SessionState{
		ID:            uuid.NewString(),
		Revision:      1,
		Selection:     initial,
		View:          models.ViewState{Current: models.ViewConsole},
		Notifications: []models.Notification{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.sessions[s.ID] = s
	return snapshot(s), evicted
}

// Get returns a snapshot of session id.
func (m *Manager) Get(id string) (models.SessionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return models.SessionState{}, fmt.Errorf("session %s: %w", id, ErrUnknownSession)
	}
	pruneExpired(s, m.now())
	return snapshot(s), nil
}

// Update applies fn to session id under the manager lock and bumps the
// session revision. Expired toasts are dropped first. When fn fails the
// session is left untouched.
func (m *Manager) Update(id string, fn func(s *models.SessionState) error) (models.SessionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return models.SessionState{}, fmt.Errorf("session %s: %w", id, ErrUnknownSession)
	}
	now := m.now()
	pruneExpired(s, now)

	work := snapshot(s)
	if err := fn(&work); err != nil {
		return models.SessionState{}, err
	}
	work.UpdatedAt = now
	work.Revision++
	*s = work
	return snapshot(s), nil
}

// PruneAll drops expired toasts everywhere and returns the ids of the
// sessions that lost one.
func (m *Manager) PruneAll() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	var changed []string
	for id, s := range m.sessions {
		if pruneExpired(s, now) {
			s.Revision++
			changed = append(changed, id)
		}
	}
	slices.Sort(changed)
	return changed
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// oldestLocked returns the least recently updated session id.
func (m *Manager) oldestLocked() string {
	var (
		oldest string
		at     time.Time
	)
	for id, s := range m.sessions {
		if oldest == "" || s.UpdatedAt.Before(at) || (s.UpdatedAt.Equal(at) && id < oldest) {
			oldest, at = id, s.UpdatedAt
		}
	}
	return oldest
}

// pruneExpired reports whether any toast was dropped.
func pruneExpired(s *models.SessionState, now time.Time) bool {
	before := len(s.Notifications)
	s.Notifications = slices.DeleteFunc(s.Notifications, func(n models.Notification) bool {
		return !now.Before(n.ExpiresAt)
	})
	return len(s.Notifications) != before
}

// snapshot deep-copies the slices of s so callers never share backing
// arrays with the stored session.
func snapshot(s *models.SessionState) models.SessionState {
	out := *s
	out.Selection.Subscribers = slices.Clone(s.Selection.Subscribers)
	out.Selection.Zones = slices.Clone(s.Selection.Zones)
	out.Notifications = slices.Clone(s.Notifications)
	if out.Notifications == nil {
		out.Notifications = []models.Notification{}
	}
	if s.Drilldown.Data != nil {
		d := *s.Drilldown.Data
		out.Drilldown.Data = &d
	}
	return out
}
