package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/plugkit/core/registry"
)

// RegistryObserver records registry activity in Prometheus metrics.
type RegistryObserver struct {
	registrations *prometheus.CounterVec
	constructions *prometheus.CounterVec
}

// NewRegistryObserver registers the counters on the default registerer.
func NewRegistryObserver() (*RegistryObserver, error) {
	return NewRegistryObserverWithRegistry(prometheus.DefaultRegisterer)
}

// NewRegistryObserverWithRegistry registers the counters on the provided
// registerer. A nil registerer defaults to the global one.
func NewRegistryObserverWithRegistry(reg prometheus.Registerer) (*RegistryObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	registrations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plugin_registrations_total",
		Help: "Total number of plugin registrations, by family",
	}, []string{"family"})
	constructions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plugin_constructions_total",
		Help: "Total number of plugin constructions, by family, key and outcome",
	}, []string{"family", "key", "outcome"})

	if err := reg.Register(registrations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			registrations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(constructions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			constructions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	return &RegistryObserver{registrations: registrations, constructions: constructions}, nil
}

// Registered implements registry.Observer.
func (o *RegistryObserver) Registered(family, _ string) {
	o.registrations.WithLabelValues(family).Inc()
}

// Constructed implements registry.Observer.
func (o *RegistryObserver) Constructed(family, key string, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, registry.ErrNotFound):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}
	o.constructions.WithLabelValues(family, key, outcome).Inc()
}
