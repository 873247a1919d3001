package sink

import (
	"io"

	"github.com/kilianp07/plugkit/core/model"
)

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// Record forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) Record(ev model.Event) error {
	for _, s := range m.Sinks {
		if err := s.Record(ev); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink that supports it, returning the first error.
func (m *MultiSink) Close() error {
	var first error
	for _, s := range m.Sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
