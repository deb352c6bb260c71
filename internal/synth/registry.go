package synth

import (
	"sort"

	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
	"github.com/gravelworks/grumble-cli/internal/synth/espeak"
	"github.com/gravelworks/grumble-cli/internal/synth/say"
)

// Registry holds the available synthesis engines keyed by identifier.
type Registry struct {
	engines map[string]driven.Synthesizer
}

// NewRegistry creates a registry with the built-in engines.
func NewRegistry() *Registry {
	r := &Registry{engines: make(map[string]driven.Synthesizer)}
	r.Register(espeak.New())
	r.Register(say.New())
	return r
}

// Register adds an engine to the registry, replacing any engine with the
// same name.
func (r *Registry) Register(engine driven.Synthesizer) {
	r.engines[engine.Name()] = engine
}

// Get returns the engine with the given name.
func (r *Registry) Get(name string) (driven.Synthesizer, bool) {
	engine, ok := r.engines[name]
	return engine, ok
}

// Engines returns all registered engines keyed by name.
func (r *Registry) Engines() map[string]driven.Synthesizer {
	out := make(map[string]driven.Synthesizer, len(r.engines))
	for name, engine := range r.engines {
		out[name] = engine
	}
	return out
}

// Names returns the registered engine names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FirstAvailable returns the first engine (in sorted name order) that is
// usable on this system.
func (r *Registry) FirstAvailable() (driven.Synthesizer, bool) {
	for _, name := range r.Names() {
		if engine := r.engines[name]; engine.Available() {
			return engine, true
		}
	}
	return nil, false
}
