package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/store"
)

func TestStore_GetMissing(t *testing.T) {
	s := New()
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_CompareAndSet(t *testing.T) {
	s := New()
	ctx := context.Background()

	sess := state.New("s1", "en", time.Now())
	sess.Version = 1
	if err := s.CompareAndSet(ctx, sess, 0, time.Hour); err != nil {
		t.Fatal(err)
	}

	// Creating again over an existing record must conflict.
	if err := s.CompareAndSet(ctx, sess, 0, time.Hour); !errors.Is(err, store.ErrVersionConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	sess.Version = 2
	if err := s.CompareAndSet(ctx, sess, 1, time.Hour); err != nil {
		t.Fatal(err)
	}

	// A stale expected version must conflict.
	sess.Version = 3
	if err := s.CompareAndSet(ctx, sess, 1, time.Hour); !errors.Is(err, store.ErrVersionConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Version != 2 {
		t.Fatalf("expected version 2 to win, got %d", got.Version)
	}
}

func TestStore_CreateRequiresVersionZero(t *testing.T) {
	s := New()
	sess := state.New("s1", "en", time.Now())
	sess.Version = 1
	if err := s.CompareAndSet(context.Background(), sess, 5, time.Hour); !errors.Is(err, store.ErrVersionConflict) {
		t.Fatalf("expected conflict for absent record with nonzero expected, got %v", err)
	}
}

func TestStore_SlidingExpiry(t *testing.T) {
	now := time.Now()
	clock := &now
	s := NewWithClock(func() time.Time { return *clock })
	ctx := context.Background()

	sess := state.New("s1", "en", now)
	sess.Version = 1
	if err := s.CompareAndSet(ctx, sess, 0, time.Minute); err != nil {
		t.Fatal(err)
	}

	// A write before the deadline slides the expiry forward.
	later := now.Add(30 * time.Second)
	clock = &later
	sess.Version = 2
	if err := s.CompareAndSet(ctx, sess, 1, time.Minute); err != nil {
		t.Fatal(err)
	}

	afterFirstDeadline := now.Add(80 * time.Second)
	clock = &afterFirstDeadline
	if _, err := s.Get(ctx, "s1"); err != nil {
		t.Fatalf("session expired despite the slide: %v", err)
	}

	afterSecondDeadline := now.Add(2 * time.Minute)
	clock = &afterSecondDeadline
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}

	// An expired record behaves like an absent one for create.
	sess = state.New("s1", "en", afterSecondDeadline)
	sess.Version = 1
	if err := s.CompareAndSet(ctx, sess, 0, time.Minute); err != nil {
		t.Fatalf("create over expired record: %v", err)
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	sess := state.New("s1", "en", time.Now())
	sess.Data.Personal = map[string]string{"name": "Jane"}
	sess.Version = 1
	if err := s.CompareAndSet(ctx, sess, 0, time.Hour); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	got.Data.Personal["name"] = "changed"

	again, _ := s.Get(ctx, "s1")
	if again.Data.Personal["name"] != "Jane" {
		t.Fatal("store leaked internal state")
	}
}

func TestStore_Delete(t *testing.T) {
	s := New()
	ctx := context.Background()
	sess := state.New("s1", "en", time.Now())
	sess.Version = 1
	if err := s.CompareAndSet(ctx, sess, 0, time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
