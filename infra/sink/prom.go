package sink

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/plugkit/core/model"
)

// PromSink counts recorded events in Prometheus metrics.
type PromSink struct {
	events *prometheus.CounterVec
}

// NewPromSink registers pipeline metrics on the default Prometheus
// registerer. The metrics HTTP server is started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pipeline_events_total",
		Help: "Total number of events recorded, by event name",
	}, []string{"event"})

	if err := reg.Register(events); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			events = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	return &PromSink{events: events}, nil
}

// Record increments the counter for the event's name.
func (s *PromSink) Record(ev model.Event) error {
	s.events.WithLabelValues(ev.Name).Inc()
	return nil
}
