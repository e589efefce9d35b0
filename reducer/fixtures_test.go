package reducer_test

import (
	"context"

	"github.com/on-the-ground/pullback_go/reducer"
	"github.com/on-the-ground/pullback_go/reducer/casepath"
)

// appState is the global sum: either the counter screen or the login
// screen is active.
type appState interface{ appState() }

type counterState struct{ Count int }

func (counterState) appState() {}

type loginState struct{ User string }

func (loginState) appState() {}

// counterAction is the local action sum for the counter screen.
type counterAction interface{ counterAction() }

type incremented struct{}

func (incremented) counterAction() {}

type scheduledIncrement struct{}

func (scheduledIncrement) counterAction() {}

type recorded struct{}

func (recorded) counterAction() {}

type blewUp struct{}

func (blewUp) counterAction() {}

// appAction is the global action sum; counterMsg carries the local one.
type appAction interface{ appAction() }

type counterMsg struct{ Action counterAction }

func (counterMsg) appAction() {}

type loggedOut struct{}

func (loggedOut) appAction() {}

type appEnv struct{ Step int }

type counterEnv struct{ Step int }

func toCounterEnv(env appEnv) counterEnv {
	return counterEnv{Step: env.Step}
}

var counterStatePath = casepath.Variant[appState, counterState]()

var counterActionPath = casepath.New(
	func(a appAction) (counterAction, bool) {
		msg, ok := a.(counterMsg)
		if !ok {
			return nil, false
		}
		return msg.Action, true
	},
	func(a counterAction) appAction {
		return counterMsg{Action: a}
	},
)

// counterReducer is the local reducer under composition in these tests.
func counterReducer(state *counterState, action counterAction, env counterEnv) []reducer.Effect[counterAction] {
	switch action.(type) {
	case incremented:
		state.Count += env.Step
		return nil
	case scheduledIncrement:
		state.Count++
		return []reducer.Effect[counterAction]{
			reducer.Send[counterAction](incremented{}),
			reducer.FireAndForget[counterAction](func(context.Context) {}),
		}
	case blewUp:
		state.Count = -1
		panic("counter blew up")
	}
	return nil
}
