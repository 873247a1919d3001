package source

import (
	"context"

	"github.com/kilianp07/plugkit/core/model"
	"github.com/kilianp07/plugkit/core/registry"
)

// Source produces pipeline events until the context is cancelled or the
// source runs dry. Run must not close out.
type Source interface {
	Run(ctx context.Context, out chan<- model.Event) error
}

var sources = registry.New[Source, map[string]any](registry.WithName("source"))

// Registry returns the source family registry.
func Registry() *registry.Registry[Source, map[string]any] { return sources }

// RegisterSource adds a source factory identified by name.
func RegisterSource(name string, f registry.Factory[Source, map[string]any]) error {
	return sources.Register(name, f)
}

// NewSource creates a Source from its plugin spec.
func NewSource(spec registry.PluginSpec) (Source, error) {
	return registry.Build(sources, spec)
}
