package source

import (
	"context"

	"github.com/kilianp07/plugkit/core/model"
)

// StaticSource emits a fixed batch of events and returns. Used in tests and
// one-shot pipelines.
type StaticSource struct {
	events []model.Event
}

// NewStaticSource creates a StaticSource with the given events.
func NewStaticSource(events ...model.Event) *StaticSource {
	return &StaticSource{events: events}
}

// Run implements source.Source.
func (s *StaticSource) Run(ctx context.Context, out chan<- model.Event) error {
	for _, ev := range s.events {
		select {
		case out <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
