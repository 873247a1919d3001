package sink

import (
	"github.com/kilianp07/plugkit/core/registry"
	coresink "github.com/kilianp07/plugkit/core/sink"
)

// init registers the built-in sinks.
func init() {
	coresink.Registry().MustRegister("nop", func(map[string]any) (coresink.Sink, error) {
		return coresink.NopSink{}, nil
	})

	coresink.Registry().MustRegister("stdout", func(conf map[string]any) (coresink.Sink, error) {
		var c struct {
			Pretty bool `json:"pretty"`
		}
		if err := registry.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewStdoutSink(c.Pretty), nil
	})

	coresink.Registry().MustRegister("jsonl", func(conf map[string]any) (coresink.Sink, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := registry.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewJSONLSink(c.Path)
	})

	coresink.Registry().MustRegister("prometheus", func(conf map[string]any) (coresink.Sink, error) {
		return NewPromSink()
	})

	coresink.Registry().MustRegister("influx", func(conf map[string]any) (coresink.Sink, error) {
		var c struct {
			URL    string `json:"url"`
			Token  string `json:"token"`
			Org    string `json:"org"`
			Bucket string `json:"bucket"`
		}
		if err := registry.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	})

	coresink.Registry().MustRegister("mqtt", func(conf map[string]any) (coresink.Sink, error) {
		var c MQTTConfig
		if err := registry.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewMQTTSink(c)
	})
}
