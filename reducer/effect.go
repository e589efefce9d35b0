package reducer

import "context"

// Effect is a deferred unit of work tagged with the action type it may
// eventually yield back into the system. Reducers return effects instead
// of performing side effects inline; executing, cancelling, and delivering
// them is the host runtime's job, not this package's.
type Effect[Action any] struct {
	run func(ctx context.Context) (Action, bool)
}

// Send yields the given action immediately when the effect is run.
// Useful for reducers that need to feed a follow-up action back in.
func Send[Action any](action Action) Effect[Action] {
	return Effect[Action]{run: func(context.Context) (Action, bool) {
		return action, true
	}}
}

// Future defers fn until the host runs the effect, yielding its action.
func Future[Action any](fn func(ctx context.Context) Action) Effect[Action] {
	return Effect[Action]{run: func(ctx context.Context) (Action, bool) {
		return fn(ctx), true
	}}
}

// FireAndForget defers fn until the host runs the effect. No action is
// yielded; suitable for logging, telemetry, or background publishing.
func FireAndForget[Action any](fn func(ctx context.Context)) Effect[Action] {
	return Effect[Action]{run: func(ctx context.Context) (Action, bool) {
		var zero Action
		fn(ctx)
		return zero, false
	}}
}

// Run executes the effect's work and reports the action it yielded, if
// any. Hosts call this from their dispatch loop; reducers never do.
func (e Effect[Action]) Run(ctx context.Context) (Action, bool) {
	if e.run == nil {
		var zero Action
		return zero, false
	}
	return e.run(ctx)
}

// MapAction re-tags an effect from one action domain to another. The
// wrapped work is untouched; only the yielded action passes through embed.
func MapAction[From, To any](e Effect[From], embed func(From) To) Effect[To] {
	return Effect[To]{run: func(ctx context.Context) (To, bool) {
		from, ok := e.Run(ctx)
		if !ok {
			var zero To
			return zero, false
		}
		return embed(from), true
	}}
}
