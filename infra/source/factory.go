package source

import (
	"time"

	"github.com/kilianp07/plugkit/core/model"
	"github.com/kilianp07/plugkit/core/registry"
	coresource "github.com/kilianp07/plugkit/core/source"
)

// init registers the built-in sources.
func init() {
	coresource.Registry().MustRegister("ticker", func(conf map[string]any) (coresource.Source, error) {
		var c struct {
			IntervalMS int            `json:"interval_ms"`
			Name       string         `json:"name"`
			Fields     map[string]any `json:"fields"`
		}
		if err := registry.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewTickerSource(time.Duration(c.IntervalMS)*time.Millisecond, c.Name, c.Fields), nil
	})

	coresource.Registry().MustRegister("static", func(conf map[string]any) (coresource.Source, error) {
		var c struct {
			Count  int            `json:"count"`
			Name   string         `json:"name"`
			Fields map[string]any `json:"fields"`
		}
		if err := registry.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Count <= 0 {
			c.Count = 1
		}
		if c.Name == "" {
			c.Name = "event"
		}
		events := make([]model.Event, c.Count)
		for i := range events {
			events[i] = model.NewEvent(c.Name, c.Fields)
		}
		return NewStaticSource(events...), nil
	})
}
