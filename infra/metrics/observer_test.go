package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/plugkit/core/registry"
)

func TestRegistryObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := NewRegistryObserverWithRegistry(reg)
	require.NoError(t, err)

	obs.Registered("sink", "stdout")
	obs.Registered("sink", "jsonl")
	obs.Constructed("sink", "stdout", nil)
	obs.Constructed("sink", "ghost", registry.ErrNotFound)
	obs.Constructed("sink", "jsonl", errors.New("open failed"))

	assert.Equal(t, float64(2), testutil.ToFloat64(obs.registrations.WithLabelValues("sink")))
	assert.Equal(t, float64(1), testutil.ToFloat64(obs.constructions.WithLabelValues("sink", "stdout", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(obs.constructions.WithLabelValues("sink", "ghost", "not_found")))
	assert.Equal(t, float64(1), testutil.ToFloat64(obs.constructions.WithLabelValues("sink", "jsonl", "error")))
}

func TestRegistryObserver_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewRegistryObserverWithRegistry(reg)
	require.NoError(t, err)
	b, err := NewRegistryObserverWithRegistry(reg)
	require.NoError(t, err)

	a.Registered("store", "memory")
	b.Registered("store", "sqlite")
	assert.Equal(t, float64(2), testutil.ToFloat64(a.registrations.WithLabelValues("store")))
}
