package synth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEngine implements driven.Synthesizer for testing.
type mockEngine struct {
	name      string
	available bool
}

func (m *mockEngine) Name() string    { return m.name }
func (m *mockEngine) Available() bool { return m.available }
func (m *mockEngine) Validate() error { return nil }

func (m *mockEngine) Synthesize(_ context.Context, _, _, _ string) error {
	return nil
}

// --- Tests ---

func TestNewRegistry_BuiltinEngines(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, []string{"espeak", "say"}, r.Names())

	engine, ok := r.Get("espeak")
	require.True(t, ok)
	assert.Equal(t, "espeak", engine.Name())

	_, ok = r.Get("festival")
	assert.False(t, ok)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	replacement := &mockEngine{name: "espeak", available: true}

	r.Register(replacement)

	engine, ok := r.Get("espeak")
	require.True(t, ok)
	assert.Same(t, driven.Synthesizer(replacement), engine)
}

func TestRegistry_Engines(t *testing.T) {
	r := NewRegistry()
	engines := r.Engines()

	assert.Len(t, engines, 2)
	assert.Contains(t, engines, "espeak")
	assert.Contains(t, engines, "say")
}

func TestRegistry_FirstAvailable(t *testing.T) {
	r := &Registry{engines: map[string]driven.Synthesizer{
		"alpha": &mockEngine{name: "alpha", available: false},
		"beta":  &mockEngine{name: "beta", available: true},
	}}

	engine, ok := r.FirstAvailable()
	require.True(t, ok)
	assert.Equal(t, "beta", engine.Name())
}

func TestRegistry_FirstAvailable_NoneUsable(t *testing.T) {
	r := &Registry{engines: map[string]driven.Synthesizer{
		"alpha": &mockEngine{name: "alpha", available: false},
	}}

	_, ok := r.FirstAvailable()
	assert.False(t, ok)
}
