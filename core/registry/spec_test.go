package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	var c struct {
		Path  string `json:"path"`
		Count int    `json:"count"`
	}
	err := Decode(map[string]any{"path": "/tmp/x", "count": 3}, &c)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", c.Path)
	assert.Equal(t, 3, c.Count)
}

func TestBuild(t *testing.T) {
	type widget struct{ size int }
	reg := New[*widget, map[string]any](WithName("widget"))
	require.NoError(t, reg.Register("basic", func(conf map[string]any) (*widget, error) {
		var c struct {
			Size int `json:"size"`
		}
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &widget{size: c.Size}, nil
	}))

	w, err := Build(reg, PluginSpec{Type: "basic", Conf: map[string]any{"size": 7}})
	require.NoError(t, err)
	assert.Equal(t, 7, w.size)

	_, err = Build(reg, PluginSpec{Type: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuildHandle(t *testing.T) {
	type widget struct{ size int }
	reg := New[*widget, map[string]any](WithName("widget"))
	require.NoError(t, reg.Register("basic", func(map[string]any) (*widget, error) {
		return &widget{size: 1}, nil
	}))

	h, err := BuildHandle(reg, PluginSpec{Type: "basic"})
	require.NoError(t, err)
	w, ok := h.Value()
	require.True(t, ok)
	assert.Equal(t, 1, w.size)
}
