package sink

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/kilianp07/plugkit/core/model"
)

// StdoutSink renders events as zerolog lines. With pretty enabled it uses
// the console writer, otherwise raw JSON.
type StdoutSink struct {
	log zerolog.Logger
}

// NewStdoutSink writes to standard output.
func NewStdoutSink(pretty bool) *StdoutSink {
	return NewStdoutSinkWithWriter(os.Stdout, pretty)
}

// NewStdoutSinkWithWriter writes to the provided writer. Used by tests.
func NewStdoutSinkWithWriter(w io.Writer, pretty bool) *StdoutSink {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(w).With().Timestamp().Logger()
	return &StdoutSink{log: z}
}

// Record implements sink.Sink.
func (s *StdoutSink) Record(ev model.Event) error {
	e := s.log.Info().
		Str("event_id", ev.ID).
		Time("event_time", ev.Time)
	for k, v := range ev.Fields {
		e = e.Interface(k, v)
	}
	e.Msg(ev.Name)
	return nil
}
