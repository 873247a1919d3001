package sink

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/kilianp07/plugkit/core/model"
)

// JSONLSink appends events to a JSONL file, one event per line.
type JSONLSink struct {
	mu  sync.Mutex
	f   *os.File
	enc *json.Encoder
}

// NewJSONLSink opens (or creates) the file at path for appending.
func NewJSONLSink(path string) (*JSONLSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &JSONLSink{f: f, enc: json.NewEncoder(f)}, nil
}

// Record implements sink.Sink.
func (s *JSONLSink) Record(ev model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(ev)
}

// Close flushes and closes the underlying file.
func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
