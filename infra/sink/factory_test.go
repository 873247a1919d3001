package sink

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/plugkit/core/registry"
	coresink "github.com/kilianp07/plugkit/core/sink"
)

func TestBuiltinSinksRegistered(t *testing.T) {
	for _, name := range []string{"nop", "stdout", "jsonl", "prometheus", "influx", "mqtt"} {
		assert.True(t, coresink.Registry().Has(name), "missing builtin sink %q", name)
	}
}

func TestBuildJSONLFromSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	s, err := registry.Build(coresink.Registry(), registry.PluginSpec{
		Type: "jsonl",
		Conf: map[string]any{"path": path},
	})
	require.NoError(t, err)
	js, ok := s.(*JSONLSink)
	require.True(t, ok)
	assert.NoError(t, js.Close())
}

func TestBuildMQTT_MissingBroker(t *testing.T) {
	_, err := registry.Build(coresink.Registry(), registry.PluginSpec{Type: "mqtt"})
	assert.ErrorContains(t, err, "broker is required")
}
