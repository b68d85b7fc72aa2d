package flow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/tools/store"

	"github.com/BadSquidward/roomlab/catalog"
)

// Session is one visitor's in-memory state. A session serialises its own
// transitions; sessions never share state.
type Session struct {
	ID string

	mu       sync.Mutex
	screen   Screen
	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{ID: id, screen: Home{}, lastSeen: now}
}

// Screen returns the current screen.
func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// CurrentPage returns the page of the current screen.
func (s *Session) CurrentPage() Page {
	return s.Screen().Page()
}

// SelectedRoom returns the chosen room, if the current screen has one.
func (s *Session) SelectedRoom() (catalog.Room, bool) {
	return SelectedRoom(s.Screen())
}

// SelectedDesign returns the chosen design, if the current screen has one.
func (s *Session) SelectedDesign() (catalog.DesignOption, bool) {
	return SelectedDesign(s.Screen())
}

// Designs returns the generated design options, if any.
func (s *Session) Designs() []catalog.DesignOption {
	return GeneratedDesigns(s.Screen())
}

// Apply runs one transition. The session is left untouched when the
// machine rejects the action.
func (s *Session) Apply(ctx context.Context, m *Machine, a Action) (Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, notice, err := m.Apply(ctx, s.screen, a)
	if err != nil {
		return Notice{}, err
	}
	s.screen = next
	return notice, nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Store keeps the live sessions keyed by id.
type Store struct {
	sessions *store.Store[string, *Session]
	now      func() time.Time
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: store.New[string, *Session](nil),
		now:      time.Now,
	}
}

// Create starts a new session on the home screen.
func (st *Store) Create() *Session {
	s := newSession(uuid.New().String(), st.now())
	st.sessions.Set(s.ID, s)
	return s
}

// Get returns the session with the given id and marks it as active.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	s := st.sessions.Get(id)
	if s == nil {
		return nil, false
	}
	s.touch(st.now())
	return s, true
}

// Remove ends a session.
func (st *Store) Remove(id string) {
	st.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	return st.sessions.Length()
}

// Sweep removes sessions idle for longer than ttl and returns how many were
// removed.
func (st *Store) Sweep(ttl time.Duration) int {
	now := st.now()
	removed := 0
	for id, s := range st.sessions.GetAll() {
		if s.idleSince(now) > ttl {
			st.sessions.Remove(id)
			removed++
		}
	}
	return removed
}
