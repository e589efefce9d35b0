// Package log is the diagnostics collaborator for scoped reducers.
//
// The only reportable condition is an action arriving while its local
// state variant is unavailable. The package default sink is a no-op, so
// release configurations pay nothing; debug configurations install a
// zap-backed sink once at startup via SetDefault.
package log

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Diagnostic describes one mismatched dispatch: an action extracted for a
// local domain whose state variant is not currently held by the sum.
type Diagnostic struct {
	// Adapter labels the scoped reducer reporting the mismatch.
	Adapter string
	// Callsite is the file:line where the adapter was composed.
	Callsite string
	// Action is the rendered label of the unreachable local action.
	Action string
	// StateType names the sum type whose variant was unavailable.
	StateType string
}

// Sink receives diagnostics from scoped reducers. Implementations must
// not panic; reporting is a side channel and never alters dispatch.
type Sink interface {
	UnavailableState(d Diagnostic)
}

type nopSink struct{}

func (nopSink) UnavailableState(Diagnostic) {}

// NewNopSink returns a sink that discards all diagnostics. This is the
// release-configuration sink and the package default.
func NewNopSink() Sink {
	return nopSink{}
}

type zapSink struct {
	logger *zap.Logger
}

func (s zapSink) UnavailableState(d Diagnostic) {
	s.logger.Warn("received action while local state unavailable",
		zap.String("adapter", d.Adapter),
		zap.String("callsite", d.Callsite),
		zap.String("action", d.Action),
		zap.String("state_type", d.StateType),
	)
}

// NewZapSink returns a sink logging diagnostics through the given zap
// logger. The debug flag is the coarse build-configuration gate: when
// false the returned sink is a no-op, keeping release builds zero-cost.
func NewZapSink(logger *zap.Logger, debug bool) Sink {
	if !debug {
		return nopSink{}
	}
	return zapSink{logger: logger}
}

var defaultSink atomic.Pointer[Sink]

func init() {
	var s Sink = nopSink{}
	defaultSink.Store(&s)
}

// SetDefault installs the sink used by adapters composed without an
// explicit one. Call once during debug wiring; safe for concurrent use.
func SetDefault(s Sink) {
	if s == nil {
		s = nopSink{}
	}
	defaultSink.Store(&s)
}

// Default returns the currently installed package-wide sink.
func Default() Sink {
	return *defaultSink.Load()
}
