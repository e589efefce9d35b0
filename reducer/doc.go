// Package reducer provides scoped reducer composition for sum-typed
// application state in Go.
//
// A reducer is a function computing state mutations and a sequence of
// effects from a current state, an action, and an environment bundle.
// Applications model their state and actions as sum types (a sealed
// interface with one struct per variant) and write small reducers over a
// single variant. Pullback lifts such a local reducer into the global
// domain so it composes with siblings via Combine.
//
// # What is a pullback?
//
// Given a reducer over (LocalState, LocalAction, LocalEnv) and three
// projections — a case path from GlobalState to LocalState, a case path
// from GlobalAction to LocalAction, and a function from GlobalEnv to
// LocalEnv — Pullback produces a reducer over the global triple. The
// produced reducer:
//
//   - ignores actions that do not belong to the local domain,
//   - extracts the local state variant, runs the local reducer against it,
//     and embeds the result back into the global state on every exit path,
//   - re-tags the returned effects from LocalAction to GlobalAction,
//     preserving order and count.
//
// # Why case paths?
//
// Go doesn't support sum types natively, but a sealed interface plus one
// struct per case expresses the same shape. A casepath.CasePath pairs the
// two directions of one case: Extract (may miss when the sum currently
// holds another variant) and Embed (always succeeds). Correct pairs
// satisfy Extract(Embed(x)) == (x, true); the casepath package ships a
// property-test helper for exactly that law.
//
// # Mismatched dispatches
//
// An action arriving while the global state holds a different variant is
// not an error: an in-flight effect may race a state transition and
// deliver its action late. The produced reducer degrades to a no-op and
// reports the mismatch through a diagnostics sink, which is a no-op
// outside debug configuration. Note that any effects the local reducer
// would have produced for that action are dropped with it; hosts that
// need delivery on this path must sequence their transitions so the race
// cannot occur.
//
// # Concurrency
//
// One invocation processes one (state, action, environment) triple to
// completion, synchronously. The produced reducer assumes exclusive
// access to the state handle for the call's duration; serializing
// dispatches against a given state instance is the caller's job.
//
// Example:
//
//	global := reducer.Combine(
//		reducer.Pullback(
//			counterReducer,
//			casepath.Variant[AppState, CounterState](),
//			casepath.Variant[AppAction, CounterAction](),
//			func(env AppEnv) CounterEnv { return CounterEnv{Now: env.Now} },
//		),
//	)
package reducer
