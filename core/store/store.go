package store

import (
	"context"
	"time"

	"github.com/kilianp07/plugkit/core/model"
	"github.com/kilianp07/plugkit/core/registry"
)

// Query filters stored events. Zero fields match everything.
type Query struct {
	Start time.Time
	End   time.Time
	Name  string
	Limit int
}

// Store persists pipeline events and serves queries over them.
type Store interface {
	Append(ctx context.Context, ev model.Event) error
	Query(ctx context.Context, q Query) ([]model.Event, error)
	Close() error
}

var stores = registry.New[Store, map[string]any](registry.WithName("store"))

// Registry returns the store family registry.
func Registry() *registry.Registry[Store, map[string]any] { return stores }

// RegisterStore adds a store factory identified by name.
func RegisterStore(name string, f registry.Factory[Store, map[string]any]) error {
	return stores.Register(name, f)
}

// NewStore creates a Store from its plugin spec.
func NewStore(spec registry.PluginSpec) (Store, error) {
	return registry.Build(stores, spec)
}

// Matches reports whether ev passes the query filters other than Limit.
func (q Query) Matches(ev model.Event) bool {
	if !q.Start.IsZero() && ev.Time.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && ev.Time.After(q.End) {
		return false
	}
	if q.Name != "" && ev.Name != q.Name {
		return false
	}
	return true
}
