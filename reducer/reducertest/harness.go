// Package reducertest drives reducers through scripted dispatches in
// tests, collecting effects and asserting on resulting state.
package reducertest

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/pullback_go/reducer"
)

// Harness owns one state instance and dispatches actions against it,
// serially, the way a host dispatch loop would.
type Harness[State, Action, Env any] struct {
	t       *testing.T
	r       reducer.Reducer[State, Action, Env]
	state   State
	env     Env
	pending []reducer.Effect[Action]
}

// New builds a harness around a reducer, an initial state, and an
// environment shared by every dispatch.
func New[State, Action, Env any](
	t *testing.T,
	r reducer.Reducer[State, Action, Env],
	initial State,
	env Env,
) *Harness[State, Action, Env] {
	t.Helper()
	return &Harness[State, Action, Env]{t: t, r: r, state: initial, env: env}
}

// Send dispatches one action and queues the effects it produced.
func (h *Harness[State, Action, Env]) Send(action Action) {
	h.t.Helper()
	h.pending = append(h.pending, h.r(&h.state, action, h.env)...)
}

// Drain runs queued effects in order, feeding each yielded action back
// through Send, until no effects remain.
func (h *Harness[State, Action, Env]) Drain(ctx context.Context) {
	h.t.Helper()
	for len(h.pending) > 0 {
		eff := h.pending[0]
		h.pending = h.pending[1:]
		if action, ok := eff.Run(ctx); ok {
			h.Send(action)
		}
	}
}

// State returns the current state.
func (h *Harness[State, Action, Env]) State() State {
	return h.state
}

// Pending returns the not-yet-drained effects in dispatch order.
func (h *Harness[State, Action, Env]) Pending() []reducer.Effect[Action] {
	return h.pending
}

// RequireState fails the test unless the current state equals want.
func (h *Harness[State, Action, Env]) RequireState(want State) {
	h.t.Helper()
	if diff := cmp.Diff(want, h.state); diff != "" {
		h.t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

// RequireNoPending fails the test if any effect is still queued.
func (h *Harness[State, Action, Env]) RequireNoPending() {
	h.t.Helper()
	require.Empty(h.t, h.pending, "expected no pending effects")
}
