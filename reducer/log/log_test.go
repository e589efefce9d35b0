package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/on-the-ground/pullback_go/reducer/log"
)

func TestZapSink_EmitsStructuredWarning(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sink := log.NewZapSink(zap.New(core), true)

	sink.UnavailableState(log.Diagnostic{
		Adapter:   "counter",
		Callsite:  "app.go:12",
		Action:    "incremented",
		StateType: "main.AppState",
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.WarnLevel, entry.Level)
	assert.Equal(t, "received action while local state unavailable", entry.Message)
	assert.Equal(t, map[string]any{
		"adapter":    "counter",
		"callsite":   "app.go:12",
		"action":     "incremented",
		"state_type": "main.AppState",
	}, entry.ContextMap())
}

func TestZapSink_ReleaseConfigurationIsNoOp(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sink := log.NewZapSink(zap.New(core), false)

	sink.UnavailableState(log.Diagnostic{Adapter: "counter"})
	assert.Zero(t, logs.Len(), "release builds must pay nothing for diagnostics")
}

func TestDefault_StartsAsNoOpAndIsSwappable(t *testing.T) {
	assert.NotPanics(t, func() {
		log.Default().UnavailableState(log.Diagnostic{})
	})

	sink, logs := log.NewTestSink()
	log.SetDefault(sink)
	defer log.SetDefault(nil)

	log.Default().UnavailableState(log.Diagnostic{Adapter: "swapped"})
	require.Equal(t, 1, logs.Len())

	log.SetDefault(nil)
	log.Default().UnavailableState(log.Diagnostic{Adapter: "ignored"})
	assert.Equal(t, 1, logs.Len(), "nil resets to the no-op sink")
}
