package uistate

import (
	"errors"
	"testing"
	"time"

	"github.com/HerbHall/olympushub/pkg/models"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, time.September, 5, 14, 25, 0, 0, time.UTC)}
}

func TestManager_CreateAndGet(t *testing.T) {
	clock := newClock()
	mgr := NewManager(10, clock.now)

	s, evicted := mgr.Create(models.Selection{TimeRange: models.Last24H})
	if evicted != "" {
		t.Errorf("evicted %q from an empty manager", evicted)
	}
	if s.View.Current != models.ViewConsole || s.Notifications == nil {
		t.Errorf("new session = %+v", s)
	}
	got, err := mgr.Get(s.ID)
	if err != nil || got.ID != s.ID {
		t.Fatalf("Get = %+v, %v", got, err)
	}
	if _, err := mgr.Get("missing"); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("Get(missing) err = %v", err)
	}
}

func TestManager_EvictsLeastRecentlyUpdated(t *testing.T) {
	clock := newClock()
	mgr := NewManager(2, clock.now)

	a, _ := mgr.Create(models.Selection{})
	clock.advance(time.Second)
	b, _ := mgr.Create(models.Selection{})
	clock.advance(time.Second)

	// Touch a so b becomes the oldest.
	if _, err := mgr.Update(a.ID, func(*models.SessionState) error { return nil }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	clock.advance(time.Second)

	_, evicted := mgr.Create(models.Selection{})
	if evicted != b.ID {
		t.Errorf("evicted %q, want %q", evicted, b.ID)
	}
	if mgr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", mgr.Len())
	}
	if _, err := mgr.Get(b.ID); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("evicted session still readable: %v", err)
	}
}

func TestManager_UpdateFailureLeavesSessionUntouched(t *testing.T) {
	mgr := NewManager(10, newClock().now)
	s, _ := mgr.Create(models.Selection{TimeRange: models.Last1H})

	boom := errors.New("boom")
	_, err := mgr.Update(s.ID, func(s *models.SessionState) error {
		s.Selection.TimeRange = models.Last30D
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	got, _ := mgr.Get(s.ID)
	if got.Selection.TimeRange != models.Last1H {
		t.Errorf("failed update leaked: %q", got.Selection.TimeRange)
	}
	if got.Revision != s.Revision {
		t.Errorf("failed update bumped revision to %d", got.Revision)
	}
}

func TestManager_RevisionAdvancesPerChange(t *testing.T) {
	clock := newClock()
	mgr := NewManager(10, clock.now)
	s, _ := mgr.Create(models.Selection{TimeRange: models.Last24H})
	if s.Revision != 1 {
		t.Fatalf("new session revision = %d, want 1", s.Revision)
	}

	for want := uint64(2); want <= 4; want++ {
		got, err := mgr.Update(s.ID, func(*models.SessionState) error { return nil })
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Revision != want {
			t.Errorf("revision = %d, want %d", got.Revision, want)
		}
	}

	_, _ = mgr.Update(s.ID, func(s *models.SessionState) error {
		s.Notifications = append(s.Notifications, models.Notification{ID: "n1", ExpiresAt: clock.now().Add(time.Second)})
		return nil
	})
	clock.advance(2 * time.Second)
	mgr.PruneAll()
	if got, _ := mgr.Get(s.ID); got.Revision != 6 {
		t.Errorf("revision after prune = %d, want 6", got.Revision)
	}
}

func TestManager_SnapshotsAreIndependent(t *testing.T) {
	mgr := NewManager(10, newClock().now)
	s, _ := mgr.Create(models.Selection{Subscribers: []models.Subscriber{{ID: "hdfc"}}})

	s.Selection.Subscribers[0].ID = "mutated"
	got, _ := mgr.Get(s.ID)
	if got.Selection.Subscribers[0].ID != "hdfc" {
		t.Errorf("caller mutation reached the stored session")
	}
}

func TestManager_PruneAll(t *testing.T) {
	clock := newClock()
	mgr := NewManager(10, clock.now)
	a, _ := mgr.Create(models.Selection{})
	b, _ := mgr.Create(models.Selection{})

	add := func(id string, ttl time.Duration) {
		_, err := mgr.Update(id, func(s *models.SessionState) error {
			s.Notifications = append(s.Notifications, models.Notification{ID: "n", ExpiresAt: clock.now().Add(ttl)})
			return nil
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	add(a.ID, time.Second)
	add(b.ID, time.Minute)

	clock.advance(2 * time.Second)
	changed := mgr.PruneAll()
	if len(changed) != 1 || changed[0] != a.ID {
		t.Errorf("PruneAll() = %v, want [%s]", changed, a.ID)
	}
	got, _ := mgr.Get(b.ID)
	if len(got.Notifications) != 1 {
		t.Errorf("unexpired toast dropped")
	}
	if again := mgr.PruneAll(); len(again) != 0 {
		t.Errorf("second PruneAll() = %v", again)
	}
}
