// Package store defines the session persistence contract. The store owns
// the durable record; the engine holds an in-memory copy for one turn only
// and orders concurrent turns exclusively through the version
// compare-and-set.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/OnslaughtSnail/vitae/kernel/state"
)

var (
	// ErrNotFound is returned for sessions that never existed or have
	// expired; callers must not distinguish the two.
	ErrNotFound = errors.New("store: session not found")
	// ErrVersionConflict is returned when the stored version no longer
	// matches the expected one. Safe to retry against fresh state.
	ErrVersionConflict = errors.New("store: version conflict")
)

// KeyPrefix namespaces session keys in shared keyspaces.
const KeyPrefix = "cv_session:"

// Store persists whole session records with a sliding TTL.
type Store interface {
	// Get loads a session by id.
	Get(ctx context.Context, id string) (state.Session, error)
	// CompareAndSet atomically replaces the record if its current
	// version equals expected. expected 0 creates the record and fails
	// with ErrVersionConflict if one already exists. Every successful
	// write resets the TTL.
	CompareAndSet(ctx context.Context, sess state.Session, expected int64, ttl time.Duration) error
	// Delete removes a session. Deleting an absent session is not an
	// error.
	Delete(ctx context.Context, id string) error
	// Ping reports backend reachability for readiness probes.
	Ping(ctx context.Context) error
}
