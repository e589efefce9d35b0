package reducer

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/google/uuid"

	"github.com/on-the-ground/pullback_go/reducer/caselabel"
	"github.com/on-the-ground/pullback_go/reducer/casepath"
	"github.com/on-the-ground/pullback_go/reducer/log"
)

// PullbackOption configures one scoped reducer at composition time.
type PullbackOption func(*pullbackConfig)

type pullbackConfig struct {
	label string
	sink  log.Sink
}

// WithLabel names the adapter in diagnostics. Without it, adapters get a
// uuid-suffixed label, which tells mismatches apart but not much else.
func WithLabel(label string) PullbackOption {
	return func(cfg *pullbackConfig) {
		cfg.label = label
	}
}

// WithDiagnostics routes this adapter's diagnostics to the given sink
// instead of the package default.
func WithDiagnostics(sink log.Sink) PullbackOption {
	return func(cfg *pullbackConfig) {
		if sink != nil {
			cfg.sink = sink
		}
	}
}

// Pullback lifts a reducer over one case of a sum-typed domain into the
// enclosing global domain.
//
// The produced reducer, once per invocation:
//
//  1. Extracts the local action. A miss means the action belongs to a
//     sibling domain: return no effects, leave state untouched. Expected
//     and silent.
//  2. Extracts the local state variant. A miss while the action did
//     extract is a mismatched dispatch, usually an in-flight effect
//     racing a state transition: report one diagnostic and degrade to a
//     no-op. Never a hard failure. Effects the local reducer would have
//     produced are dropped along with the action.
//  3. Runs local against the extracted variant and re-embeds the result
//     into the global state on every exit path. A panicking local reducer
//     still gets its partial mutation written back before the panic
//     propagates.
//  4. Re-tags the local effects into the global action domain, one to
//     one, preserving order.
//
// Both case paths must satisfy the round-trip law; Pullback performs no
// runtime check, so keep them under casepath.CheckRoundTrip in tests.
func Pullback[GlobalState, GlobalAction, GlobalEnv, LocalState, LocalAction, LocalEnv any](
	local Reducer[LocalState, LocalAction, LocalEnv],
	statePath casepath.CasePath[GlobalState, LocalState],
	actionPath casepath.CasePath[GlobalAction, LocalAction],
	toLocalEnv func(GlobalEnv) LocalEnv,
	opts ...PullbackOption,
) Reducer[GlobalState, GlobalAction, GlobalEnv] {
	cfg := pullbackConfig{
		label: "pullback-" + uuid.NewString(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	callsite := composedAt()
	stateType := reflect.TypeFor[GlobalState]().String()

	return func(state *GlobalState, action GlobalAction, env GlobalEnv) []Effect[GlobalAction] {
		localAction, ok := actionPath.Extract(action)
		if !ok {
			return nil
		}
		localState, ok := statePath.Extract(*state)
		if !ok {
			sink := cfg.sink
			if sink == nil {
				sink = log.Default()
			}
			sink.UnavailableState(log.Diagnostic{
				Adapter:   cfg.label,
				Callsite:  callsite,
				Action:    caselabel.Render(localAction),
				StateType: stateType,
			})
			return nil
		}

		var localEffects []Effect[LocalAction]
		func() {
			// write-back must survive a panicking local reducer
			defer func() {
				*state = statePath.Embed(localState)
			}()
			localEffects = local(&localState, localAction, toLocalEnv(env))
		}()

		if len(localEffects) == 0 {
			return nil
		}
		globalEffects := make([]Effect[GlobalAction], len(localEffects))
		for i, eff := range localEffects {
			globalEffects[i] = MapAction(eff, actionPath.Embed)
		}
		return globalEffects
	}
}

// composedAt captures the file:line of the Pullback caller.
func composedAt() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
