package sink

import "github.com/kilianp07/plugkit/core/model"

// Sink records pipeline events. Implementations that hold resources should
// also implement io.Closer; the pipeline closes them on shutdown.
type Sink interface {
	Record(ev model.Event) error
}

// NopSink discards all events.
type NopSink struct{}

// Record implements Sink.
func (NopSink) Record(model.Event) error { return nil }
