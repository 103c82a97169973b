// Package engine orchestrates one dialogue turn: load session, dispatch
// to the step handler, apply the transition table, commit through the
// store's compare-and-set, and emit the outbound prompt directive.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/OnslaughtSnail/vitae/kernel/form"
	"github.com/OnslaughtSnail/vitae/kernel/handler"
	"github.com/OnslaughtSnail/vitae/kernel/render"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/store"
	"github.com/OnslaughtSnail/vitae/kernel/transition"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
	clog "github.com/OnslaughtSnail/vitae/pkg/log"
	"github.com/OnslaughtSnail/vitae/pkg/retry"
)

// Config configures Engine.
type Config struct {
	Store  store.Store
	Schema *form.Schema

	// TTL is the sliding session expiry, refreshed on every commit.
	TTL time.Duration
	// MaxAttempts bounds commit retries per turn (first try included).
	MaxAttempts int
	// MaxCorrections bounds review-stage edit requests; 0 is unlimited.
	MaxCorrections int
	// DefaultLanguage is assigned to fresh sessions without an explicit
	// language ("en" when empty).
	DefaultLanguage string

	// Now is replaceable for tests.
	Now func() time.Time
}

// Engine is the workflow engine. It holds no session state between turns;
// the store's compare-and-set on the version counter is the only ordering
// primitive, so any number of engine instances may share a store.
type Engine struct {
	store          store.Store
	handlers       map[state.Step]handler.Handler
	ttl            time.Duration
	maxAttempts    int
	maxCorrections int
	language       string
	now            func() time.Time
}

func New(cfg Config) (*Engine, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("engine: store is nil")
	}
	schema := cfg.Schema
	if schema == nil {
		var err error
		if schema, err = form.Default(); err != nil {
			return nil, err
		}
	}
	handlers, err := handler.Registry(schema)
	if err != nil {
		return nil, err
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	language := cfg.DefaultLanguage
	if language == "" {
		language = "en"
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	maxCorrections := cfg.MaxCorrections
	if maxCorrections <= 0 {
		maxCorrections = schema.Limits.MaxCorrections
	}
	return &Engine{
		store:          cfg.Store,
		handlers:       handlers,
		ttl:            ttl,
		maxAttempts:    attempts,
		maxCorrections: maxCorrections,
		language:       language,
		now:            now,
	}, nil
}

// TurnInput is one inbound user message.
type TurnInput struct {
	// SessionID may be empty on the very first message; a fresh id is
	// assigned and returned in the TurnResult.
	SessionID string
	Text      string
	// Language is only honored when it creates the session.
	Language string
}

// TurnResult describes the committed turn and the next prompt directive.
type TurnResult struct {
	SessionID string
	Version   int64
	Step      state.Step
	Outcome   handler.Outcome
	Directive render.Directive
	// Finalized signals the caller to invoke the document exporter.
	Finalized bool
}

// ProcessTurn applies one user message to its session. Exactly one store
// mutation happens per accepted turn; on a commit conflict the whole turn
// is reapplied against freshly loaded state, up to the attempt budget.
func (e *Engine) ProcessTurn(ctx context.Context, in TurnInput) (TurnResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	attempts := 0
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = e.maxAttempts - 1
	result, err := retry.Do(ctx, cfg, func() (TurnResult, error) {
		attempts++
		res, err := e.applyTurn(ctx, sessionID, in)
		if err != nil && (errors.Is(err, store.ErrVersionConflict) || errors.Is(err, store.ErrNotFound)) {
			// A vanished record between load and commit is the same
			// race as a stale version: reload and reapply.
			return TurnResult{}, retry.Retryable(err)
		}
		return res, err
	})
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) || errors.Is(err, store.ErrNotFound) {
			clog.Warn("turn conflicted, retries exhausted", "session_id", sessionID, "attempts", attempts)
			return TurnResult{}, &ConflictError{SessionID: sessionID, Attempts: attempts}
		}
		return TurnResult{}, err
	}
	return result, nil
}

func (e *Engine) applyTurn(ctx context.Context, sessionID string, in TurnInput) (TurnResult, error) {
	now := e.now()

	sess, err := e.store.Get(ctx, sessionID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		language := in.Language
		if language == "" {
			language = e.language
		}
		sess = state.New(sessionID, language, now)
	case err != nil:
		return TurnResult{}, err
	}

	if sess.Finalized() {
		return TurnResult{}, &FinalizedError{SessionID: sess.ID}
	}

	h, ok := e.handlers[sess.Step]
	if !ok {
		return TurnResult{}, &InvalidTransitionError{
			SessionID: sess.ID,
			Step:      sess.Step,
			Cause:     fmt.Errorf("no handler registered"),
		}
	}

	res := h.Handle(sess.Data, sess.Sub, handler.Input{Text: in.Text, Language: sess.Language})

	if res.Outcome == handler.OutcomeCorrection &&
		e.maxCorrections > 0 && sess.Corrections >= e.maxCorrections {
		res = handler.Result{
			Outcome: handler.OutcomeRejected,
			Data:    sess.Data.Clone(),
			Sub:     sess.Sub.Clone(),
			Hint:    handler.Hint{Review: true, Reason: validate.ReasonLimitReached},
			Reason:  validate.ReasonLimitReached,
		}
	}

	next, err := transition.Next(sess.Step, res.Outcome, res.Target)
	if err != nil {
		return TurnResult{}, &InvalidTransitionError{
			SessionID: sess.ID,
			Step:      sess.Step,
			Outcome:   res.Outcome,
			Cause:     err,
		}
	}

	updated := sess.Clone()
	updated.Data = res.Data
	updated.Sub = res.Sub
	if res.Outcome == handler.OutcomeCorrection {
		updated.Corrections++
	}
	updated.Step = next
	updated.Version = sess.Version + 1
	updated.UpdatedAt = now
	updated.ExpiresAt = now.Add(e.ttl)

	hint := res.Hint
	if next != sess.Step {
		// Leaving a step clears its cursor. The new step's handler decides
		// the opening question, and its field is seeded into the cursor so
		// the next input answers it instead of re-triggering the opener.
		updated.Sub = state.SubState{}
		if h, ok := e.handlers[next]; ok {
			hint = h.Prompt(updated.Data, updated.Sub)
			updated.Sub.Field = hint.Field
		}
	}

	if err := e.store.CompareAndSet(ctx, updated, sess.Version, e.ttl); err != nil {
		return TurnResult{}, err
	}

	directive := render.Directive{
		Step:       updated.Step,
		Field:      hint.Field,
		AskAnother: hint.AskAnother,
		Review:     hint.Review,
		Reason:     hint.Reason,
	}
	if updated.Step == state.StepFinalized {
		directive = render.Directive{Step: state.StepFinalized, Finalized: true}
	}
	clog.Debug("turn committed",
		"session_id", updated.ID,
		"step", updated.Step,
		"outcome", res.Outcome,
		"version", updated.Version,
	)
	return TurnResult{
		SessionID: updated.ID,
		Version:   updated.Version,
		Step:      updated.Step,
		Outcome:   res.Outcome,
		Directive: directive,
		Finalized: updated.Step == state.StepFinalized,
	}, nil
}

// Session exposes a read-only load for transport-level views and exports.
func (e *Engine) Session(ctx context.Context, id string) (state.Session, error) {
	return e.store.Get(ctx, id)
}
