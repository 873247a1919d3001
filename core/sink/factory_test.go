package sink

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/plugkit/core/model"
	"github.com/kilianp07/plugkit/core/registry"
)

type recordingSink struct {
	mu     sync.Mutex
	events []model.Event
	fail   error
	closed bool
}

func (s *recordingSink) Record(ev model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func TestNewSink_Empty(t *testing.T) {
	s, err := NewSink(nil)
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, s)
	assert.NoError(t, s.Record(model.NewEvent("ignored", nil)))
}

func TestNewSink_Single(t *testing.T) {
	rec := &recordingSink{}
	require.NoError(t, RegisterSink("test-single", func(map[string]any) (Sink, error) { return rec, nil }))

	s, err := NewSink([]registry.PluginSpec{{Type: "test-single"}})
	require.NoError(t, err)
	require.NoError(t, s.Record(model.NewEvent("a", nil)))
	assert.Len(t, rec.events, 1)
}

func TestNewSink_MultiFanOut(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	require.NoError(t, RegisterSink("test-multi-a", func(map[string]any) (Sink, error) { return a, nil }))
	require.NoError(t, RegisterSink("test-multi-b", func(map[string]any) (Sink, error) { return b, nil }))

	s, err := NewSink([]registry.PluginSpec{{Type: "test-multi-a"}, {Type: "test-multi-b"}})
	require.NoError(t, err)
	require.NoError(t, s.Record(model.NewEvent("a", nil)))
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}

func TestNewSink_UnknownType(t *testing.T) {
	_, err := NewSink([]registry.PluginSpec{{Type: "test-nope"}})
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestMultiSink_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	bad := &recordingSink{fail: boom}
	ok := &recordingSink{}
	m := NewMultiSink(bad, ok)
	assert.ErrorIs(t, m.Record(model.NewEvent("a", nil)), boom)
	assert.Empty(t, ok.events)
}

func TestMultiSink_Close(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	m := NewMultiSink(a, NopSink{}, b)
	require.NoError(t, m.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
