// Package inmemory is a thread-safe single-process session store, used by
// the console client and as the reference implementation in tests.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/store"
)

type record struct {
	sess      state.Session
	expiresAt time.Time
}

// Store keeps sessions in a mutex-guarded map with lazy expiry.
type Store struct {
	mu   sync.RWMutex
	data map[string]record

	// now is replaceable for expiry tests.
	now func() time.Time
}

func New() *Store {
	return &Store{data: map[string]record{}, now: time.Now}
}

// NewWithClock builds a store with an injected clock.
func NewWithClock(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{data: map[string]record{}, now: now}
}

func (s *Store) Get(ctx context.Context, id string) (state.Session, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data[id]
	if !ok || s.expired(rec) {
		delete(s.data, id)
		return state.Session{}, store.ErrNotFound
	}
	return rec.sess.Clone(), nil
}

func (s *Store) CompareAndSet(ctx context.Context, sess state.Session, expected int64, ttl time.Duration) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.data[sess.ID]
	if ok && s.expired(cur) {
		delete(s.data, sess.ID)
		ok = false
	}
	if !ok {
		if expected != 0 {
			return store.ErrVersionConflict
		}
	} else if cur.sess.Version != expected {
		return store.ErrVersionConflict
	}
	s.data[sess.ID] = record{
		sess:      sess.Clone(),
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	_ = ctx
	return nil
}

func (s *Store) expired(rec record) bool {
	return !rec.expiresAt.IsZero() && !s.now().Before(rec.expiresAt)
}
