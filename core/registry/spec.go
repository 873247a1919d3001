package registry

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/kilianp07/plugkit/core/handle"
)

// PluginSpec contains the type name and raw configuration for one plugin
// instance. Each factory is responsible for decoding the raw map into its
// own concrete configuration struct.
type PluginSpec struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// Build constructs a plugin from its spec. It is the common path for
// families whose factories take a raw configuration map.
func Build[T any](r *Registry[T, map[string]any], spec PluginSpec) (T, error) {
	return r.Construct(spec.Type, spec.Conf)
}

// BuildHandle is Build with the family's ownership policy applied.
func BuildHandle[T any](r *Registry[T, map[string]any], spec PluginSpec) (handle.Handle[T], error) {
	return r.ConstructHandle(spec.Type, spec.Conf)
}

// Decode fills out the provided struct from a raw config map using json tags.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
