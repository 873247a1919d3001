package source

import (
	"context"
	"time"

	"github.com/kilianp07/plugkit/core/model"
)

// TickerSource emits one event per interval until the context is cancelled.
type TickerSource struct {
	interval time.Duration
	name     string
	fields   map[string]any
}

// NewTickerSource creates a TickerSource emitting events named name.
func NewTickerSource(interval time.Duration, name string, fields map[string]any) *TickerSource {
	if interval <= 0 {
		interval = time.Second
	}
	if name == "" {
		name = "tick"
	}
	return &TickerSource{interval: interval, name: name, fields: fields}
}

// Run implements source.Source.
func (s *TickerSource) Run(ctx context.Context, out chan<- model.Event) error {
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			select {
			case out <- model.NewEvent(s.name, s.fields):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
