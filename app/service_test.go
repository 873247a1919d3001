package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/plugkit/config"
	"github.com/kilianp07/plugkit/core/registry"
	corestore "github.com/kilianp07/plugkit/core/store"
)

func TestServicePipeline(t *testing.T) {
	cfg := &config.Config{
		Pipeline: config.PipelineConfig{
			Source: registry.PluginSpec{
				Type: "static",
				Conf: map[string]any{"count": 3, "name": "demo"},
			},
			Store: &registry.PluginSpec{Type: "memory"},
		},
	}
	cfg.Pipeline.SetDefaults()
	cfg.Metrics.SetDefaults()

	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Run(ctx))

	res, err := svc.Store().Query(context.Background(), corestore.Query{Name: "demo"})
	require.NoError(t, err)
	assert.Len(t, res, 3)
}

func TestService_UnknownSource(t *testing.T) {
	cfg := &config.Config{
		Pipeline: config.PipelineConfig{
			Source: registry.PluginSpec{Type: "ghost"},
		},
	}
	cfg.Pipeline.SetDefaults()

	_, err := New(cfg)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestService_UnknownSink(t *testing.T) {
	cfg := &config.Config{
		Pipeline: config.PipelineConfig{
			Source: registry.PluginSpec{Type: "static", Conf: map[string]any{"count": 1}},
			Sinks:  []registry.PluginSpec{{Type: "ghost"}},
		},
	}
	cfg.Pipeline.SetDefaults()

	_, err := New(cfg)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}
