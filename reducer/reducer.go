package reducer

// Reducer computes state mutations and a sequence of effects from the
// current state, an incoming action, and an environment bundle. The state
// pointer is an exclusive mutable handle for the duration of one call.
type Reducer[State, Action, Env any] func(state *State, action Action, env Env) []Effect[Action]

// Combine folds several reducers over the same domain into one. Each
// reducer runs in order against the same state handle, so a later reducer
// observes the mutations of an earlier one within the same dispatch.
// Effects are concatenated in combination order.
func Combine[State, Action, Env any](reducers ...Reducer[State, Action, Env]) Reducer[State, Action, Env] {
	return func(state *State, action Action, env Env) []Effect[Action] {
		var effects []Effect[Action]
		for _, r := range reducers {
			effects = append(effects, r(state, action, env)...)
		}
		return effects
	}
}
