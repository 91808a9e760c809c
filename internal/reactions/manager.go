// Package reactions keeps the per-target optimistic reaction state: the
// view mutates before the network call settles, reconciles with server
// truth on success and rolls back exactly on failure. Reactions are
// high-frequency, low-stakes affordances; perceived latency wins over
// perfect consistency and the backend stays the single source of truth.
package reactions

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"socialuni/internal/core"
	"socialuni/internal/session"
	"socialuni/pkg/socialuni"
)

// View is the client-side reaction state attached to one rendered target.
type View struct {
	Current *core.Reaction
	Count   int64

	// Unavailable is set when reconciliation learns the target is gone or
	// no longer visible.
	Unavailable bool
}

type entry struct {
	view View

	// seq increases with every optimistic update on this target. A settling
	// network call compares the sequence it started with and discards its
	// own writes when a newer update has taken over the view since.
	seq uint64
}

type Manager struct {
	api     core.ReactionAPI
	session *session.Store
	logger  *slog.Logger

	// Notify surfaces a user-facing message after a rollback. Defaults to
	// a log line.
	Notify func(message string)

	mu    sync.Mutex
	views map[core.Target]*entry
}

func NewManager(api core.ReactionAPI, store *session.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		api:     api,
		session: store,
		logger:  logger.With("component", "reactions.Manager"),
		views:   map[core.Target]*entry{},
	}
}

// View returns the current view state for target.
func (m *Manager) View(target core.Target) View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entry(target).view
}

// Seed initializes the view from an authoritative server snapshot.
func (m *Manager) Seed(target core.Target, state *core.ReactionState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(target)
	e.view = View{Current: state.UserReaction, Count: state.Count}
}

// Load fetches and seeds the view. Reaction reads are best-effort: any
// failure degrades to the existing (or empty) view instead of surfacing.
func (m *Manager) Load(ctx context.Context, target core.Target) View {
	state, err := m.api.ReactionState(ctx, target)
	if err != nil || state == nil {
		return m.View(target)
	}

	m.Seed(target, state)
	return m.View(target)
}

// React runs one optimistic transition: toggling the current type removes
// the reaction, a different type updates in place with the count unchanged,
// and reacting from a clean state adds. The view mutates synchronously
// before the network call is issued. No automatic retry.
func (m *Manager) React(ctx context.Context, target core.Target, rtype core.ReactionType) (View, error) {
	claims, err := m.session.Claims()
	if err != nil {
		return m.View(target), socialuni.ErrAuthRequired
	}

	m.mu.Lock()

	e := m.entry(target)
	prev := e.view
	removing := prev.Current != nil && prev.Current.Type == rtype

	next := View{Count: prev.Count}
	switch {
	case removing:
		if next.Count = prev.Count - 1; next.Count < 0 {
			next.Count = 0
		}
	default:
		next.Current = placeholder(claims, target, rtype)
		if prev.Current == nil {
			next.Count = prev.Count + 1
		}
	}

	e.view = next
	e.seq++
	seq := e.seq

	m.mu.Unlock()

	var persisted *core.Reaction
	if removing {
		err = m.api.RemoveReaction(ctx, target)
	} else {
		persisted, err = m.api.React(ctx, target, rtype)
	}

	if err != nil {
		m.rollback(target, seq, prev)
		m.surface(fmt.Sprintf("could not update reaction: %v", err))
		return m.View(target), err
	}

	if persisted != nil {
		m.settle(target, seq, func(v *View) { v.Current = persisted })
	}

	m.reconcile(ctx, target, seq)

	return m.View(target), nil
}

// reconcile overwrites the optimistic guess with server truth. When the
// reconciling fetch itself fails the guess stands, unless the target turns
// out to be gone or invisible.
func (m *Manager) reconcile(ctx context.Context, target core.Target, seq uint64) {
	state, err := m.api.ReactionState(ctx, target)
	if err != nil {
		switch socialuni.KindOf(err) {
		case socialuni.KindForbidden, socialuni.KindNotFound:
			m.settle(target, seq, func(v *View) { v.Unavailable = true })
		}
		return
	}

	m.settle(target, seq, func(v *View) {
		v.Current = state.UserReaction
		v.Count = state.Count
	})
}

func (m *Manager) rollback(target core.Target, seq uint64, prev View) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(target)
	if e.seq != seq {
		// A newer optimistic update owns the view; this settlement is stale.
		return
	}
	e.view = prev
}

func (m *Manager) settle(target core.Target, seq uint64, apply func(*View)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(target)
	if e.seq != seq {
		return
	}
	apply(&e.view)
}

// entry must be called with the lock held.
func (m *Manager) entry(target core.Target) *entry {
	e, ok := m.views[target]
	if !ok {
		e = &entry{}
		m.views[target] = e
	}
	return e
}

func (m *Manager) surface(message string) {
	if m.Notify != nil {
		m.Notify(message)
		return
	}
	m.logger.Warn(message)
}

func placeholder(claims core.Claims, target core.Target, rtype core.ReactionType) *core.Reaction {
	r := &core.Reaction{Type: rtype, UserID: claims.Subject, Timestamp: time.Now()}

	switch target.Kind {
	case core.TargetPost:
		r.PostID = target.ID
	case core.TargetComment:
		r.CommentID = target.ID
	}
	return r
}
