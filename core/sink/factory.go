package sink

import "github.com/kilianp07/plugkit/core/registry"

var sinks = registry.New[Sink, map[string]any](registry.WithName("sink"))

// Registry returns the sink family registry.
func Registry() *registry.Registry[Sink, map[string]any] { return sinks }

// RegisterSink adds a sink factory identified by name.
func RegisterSink(name string, f registry.Factory[Sink, map[string]any]) error {
	return sinks.Register(name, f)
}

// NewSink creates a Sink from the provided specs. No spec yields a NopSink,
// a single spec the sink itself, several a MultiSink fan-out.
func NewSink(specs []registry.PluginSpec) (Sink, error) {
	if len(specs) == 0 {
		return NopSink{}, nil
	}
	if len(specs) == 1 {
		return registry.Build(sinks, specs[0])
	}
	out := make([]Sink, len(specs))
	for i, spec := range specs {
		s, err := registry.Build(sinks, spec)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return NewMultiSink(out...), nil
}
