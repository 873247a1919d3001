package store

import (
	"github.com/kilianp07/plugkit/core/registry"
	corestore "github.com/kilianp07/plugkit/core/store"
)

// init registers the built-in stores.
func init() {
	corestore.Registry().MustRegister("memory", func(map[string]any) (corestore.Store, error) {
		return NewMemoryStore(), nil
	})

	corestore.Registry().MustRegister("sqlite", func(conf map[string]any) (corestore.Store, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := registry.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewSQLiteStore(c.Path)
	})
}
