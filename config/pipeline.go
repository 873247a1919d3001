package config

import (
	"fmt"

	"github.com/kilianp07/plugkit/core/registry"
)

// PipelineConfig lists the pluggable components of one pipeline. Each
// component is defined solely by its type and an arbitrary configuration
// map; the set of valid types is whatever was compiled in and registered.
type PipelineConfig struct {
	Source registry.PluginSpec   `json:"source"`
	Sinks  []registry.PluginSpec `json:"sinks"`
	Store  *registry.PluginSpec  `json:"store"`
	// Buffer is the capacity of the event channel between source and sinks.
	Buffer int `json:"buffer"`
}

// SetDefaults applies sane defaults.
func (c *PipelineConfig) SetDefaults() {
	if c.Buffer <= 0 {
		c.Buffer = 16
	}
	if c.Source.Type == "" {
		c.Source.Type = "ticker"
	}
}

// Validate checks mandatory fields.
func (c PipelineConfig) Validate() error {
	for i, s := range c.Sinks {
		if s.Type == "" {
			return fmt.Errorf("sink %d: type is required", i)
		}
	}
	if c.Store != nil && c.Store.Type == "" {
		return fmt.Errorf("store: type is required")
	}
	return nil
}

// MetricsConfig defines settings for the metrics endpoint.
type MetricsConfig struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
}

// SetDefaults applies sane defaults.
func (c *MetricsConfig) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":2112"
	}
}
