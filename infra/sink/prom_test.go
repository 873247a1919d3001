package sink

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/plugkit/core/model"
)

func TestPromSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, s.Record(model.NewEvent("tick", nil)))
	require.NoError(t, s.Record(model.NewEvent("tick", nil)))
	require.NoError(t, s.Record(model.NewEvent("boot", nil)))

	assert.Equal(t, float64(2), testutil.ToFloat64(s.events.WithLabelValues("tick")))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.events.WithLabelValues("boot")))
}

// Constructing twice against the same registerer reuses the collector.
func TestPromSink_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	b, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, a.Record(model.NewEvent("tick", nil)))
	require.NoError(t, b.Record(model.NewEvent("tick", nil)))
	assert.Equal(t, float64(2), testutil.ToFloat64(a.events.WithLabelValues("tick")))
}
