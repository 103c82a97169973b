// Package redis backs the session store with a Redis keyspace, the
// deployment target when multiple engine instances share sessions. The
// version check rides on WATCH + MULTI so a concurrent write between load
// and commit surfaces as a version conflict.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/store"
)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store is a Redis-backed session store. TTL handling is native: every
// successful write re-arms the key expiry.
type Store struct {
	client *redis.Client
}

func New(opts Options) (*Store, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis: addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &Store{client: client}, nil
}

// NewFromClient wraps an existing client, mainly for tests.
func NewFromClient(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func key(id string) string {
	return store.KeyPrefix + id
}

func (s *Store) Get(ctx context.Context, id string) (state.Session, error) {
	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return state.Session{}, store.ErrNotFound
	}
	if err != nil {
		return state.Session{}, fmt.Errorf("redis: get session %q: %w", id, err)
	}
	return state.Unmarshal(raw)
}

func (s *Store) CompareAndSet(ctx context.Context, sess state.Session, expected int64, ttl time.Duration) error {
	payload, err := state.Marshal(sess)
	if err != nil {
		return err
	}
	k := key(sess.ID)
	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, k).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			if expected != 0 {
				return store.ErrVersionConflict
			}
		case err != nil:
			return fmt.Errorf("redis: load for cas: %w", err)
		default:
			cur, err := state.Unmarshal(raw)
			if err != nil {
				return err
			}
			if cur.Version != expected {
				return store.ErrVersionConflict
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, payload, ttl)
			return nil
		})
		return err
	}, k)
	if errors.Is(err, redis.TxFailedErr) {
		// The key changed between WATCH and EXEC; same recovery as a
		// version mismatch.
		return store.ErrVersionConflict
	}
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("redis: delete session %q: %w", id, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
